package app

import "github.com/cdt-manas/Tikat/internal/domain"

type MetadataResponse struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

func toMetadataResponse(m *domain.Metadata) MetadataResponse {
	return MetadataResponse{
		CurrentPage:  m.CurrentPage,
		FirstPage:    m.FirstPage,
		LastPage:     m.LastPage,
		PageSize:     m.PageSize,
		TotalRecords: m.TotalRecords,
	}
}
