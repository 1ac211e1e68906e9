package domain

import "time"

type PropertyType string

const (
	PropertyTypeRooms     PropertyType = "Rooms"
	PropertyTypeTinyhouse PropertyType = "Tinyhouse"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeCottage   PropertyType = "Cottage"
)

type Amenity string

const (
	AmenityWasherDryer       Amenity = "WasherDryer"
	AmenityAirConditioning   Amenity = "AirConditioning"
	AmenityDishwasher        Amenity = "Dishwasher"
	AmenityHighSpeedInternet Amenity = "HighSpeedInternet"
	AmenityHardwoodFloors    Amenity = "HardwoodFloors"
	AmenityWalkInClosets     Amenity = "WalkInClosets"
	AmenityMicrowave         Amenity = "Microwave"
	AmenityRefrigerator      Amenity = "Refrigerator"
	AmenityPool              Amenity = "Pool"
	AmenityGym               Amenity = "Gym"
	AmenityParking           Amenity = "Parking"
	AmenityPetsAllowed       Amenity = "PetsAllowed"
	AmenityWiFi              Amenity = "WiFi"
)

type Highlight string

const (
	HighlightHighSpeedInternetAccess Highlight = "HighSpeedInternetAccess"
	HighlightWasherDryer             Highlight = "WasherDryer"
	HighlightAirConditioning         Highlight = "AirConditioning"
	HighlightHeating                 Highlight = "Heating"
	HighlightSmokeFree               Highlight = "SmokeFree"
	HighlightCableReady              Highlight = "CableReady"
	HighlightSatelliteTV             Highlight = "SatelliteTV"
	HighlightDoubleVanities          Highlight = "DoubleVanities"
	HighlightTubShower               Highlight = "TubShower"
	HighlightIntercom                Highlight = "Intercom"
	HighlightSprinklerSystem         Highlight = "SprinklerSystem"
	HighlightRecentlyRenovated       Highlight = "RecentlyRenovated"
	HighlightCloseToTransit          Highlight = "CloseToTransit"
	HighlightGreatView               Highlight = "GreatView"
	HighlightQuietNeighborhood       Highlight = "QuietNeighborhood"
)

type Property struct {
	ID                int32        `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	PricePerMonth     float64      `json:"pricePerMonth"`
	SecurityDeposit   float64      `json:"securityDeposit"`
	ApplicationFee    float64      `json:"applicationFee"`
	PhotoURLs         []string     `json:"photoUrls"`
	Amenities         []string     `json:"amenities"`
	Highlights        []string     `json:"highlights"`
	IsPetsAllowed     bool         `json:"isPetsAllowed"`
	IsParkingIncluded bool         `json:"isParkingIncluded"`
	Beds              int32        `json:"beds"`
	Baths             float64      `json:"baths"`
	SquareFeet        int32        `json:"squareFeet"`
	PropertyType      PropertyType `json:"propertyType"`
	PostedDate        time.Time    `json:"postedDate"`
	AverageRating     float64      `json:"averageRating"`
	NumberOfReviews   int32        `json:"numberOfReviews"`
	LocationID        int32        `json:"locationId"`
	ManagerCognitoID  string       `json:"managerCognitoId"`

	// Location is populated on reads that join the owning location.
	Location *Location `json:"location,omitempty"`
}
