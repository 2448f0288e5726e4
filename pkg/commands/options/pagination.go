package options

import (
	"github.com/spf13/cobra"

	"sorties.club/sorties/pkg/paging"
)

// PaginationOptions
type PaginationOptions struct {
	Page int
	Size int
}

func AddPaginationArgs(cmd *cobra.Command, po *PaginationOptions) {
	cmd.Flags().IntVarP(&po.Page, "page", "p", 1,
		"Page number to fetch (1-based).")
	cmd.Flags().IntVar(&po.Size, "size", paging.DefaultPageSize,
		"Events per page.")
}

// PageRequest resolves the flags into a page request, clamping to page 1.
func (po *PaginationOptions) PageRequest() paging.PageRequest {
	page := po.Page
	if page < 1 {
		page = 1
	}
	size := po.Size
	if size <= 0 {
		size = paging.DefaultPageSize
	}
	return paging.PageRequest{
		Page:     page,
		PageSize: size,
		First:    (page - 1) * size,
	}
}
