package usecase

import "moderation-srv/pkg/paginator"

func paginatorOf(total, count int64, pq paginator.PaginateQuery) paginator.Paginator {
	return paginator.Paginator{
		Total:       total,
		Count:       count,
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}
}
