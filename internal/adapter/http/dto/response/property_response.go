package response

import "bidworks/internal/domain/entities"

type PropertyDataResponse struct {
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	LotSize      float64 `json:"lotSize,omitempty"`
	BuildingArea float64 `json:"buildingArea,omitempty"`
	RoofArea     float64 `json:"roofArea,omitempty"`
	Perimeter    float64 `json:"perimeter,omitempty"`
	YearBuilt    int     `json:"yearBuilt,omitempty"`
	PropertyType string  `json:"propertyType,omitempty"`
}

func FromPropertyData(d entities.PropertyData) PropertyDataResponse {
	return PropertyDataResponse{
		Address:      d.Address,
		Lat:          d.Lat,
		Lng:          d.Lng,
		LotSize:      d.LotSize,
		BuildingArea: d.BuildingArea,
		RoofArea:     d.RoofArea,
		Perimeter:    d.Perimeter,
		YearBuilt:    d.YearBuilt,
		PropertyType: d.PropertyType,
	}
}
