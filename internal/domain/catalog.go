package domain

// ServiceType selects which catalog and which required fields apply to a booking.
type ServiceType string

const (
	ServiceCombo        ServiceType = "combo"
	ServiceDayTrip      ServiceType = "day-trip"
	ServiceStay         ServiceType = "stay"
	ServiceTeamBuilding ServiceType = "team-building"
)

// Prices are VND amounts; the smallest unit is 1 đồng, so plain int64.

type ComboPackage struct {
	ID                 string
	Name               string
	Subtitle           string
	PriceAdult         int64
	PriceChild         int64
	PriceAdultOriginal *int64 // strike-through price, display only
	PriceChildOriginal *int64
	// RequiresAccommodation marks combos whose price is incomplete until a
	// lodging option is chosen (combo-a1).
	RequiresAccommodation bool
	DisplayOrder          int
	Published             bool
}

type DayTripPackage struct {
	ID       string
	Name     string
	Subtitle string
	// Base per-person prices.
	PriceAdult int64
	PriceChild int64
	// Alternate BBQ-inclusive prices. When set and BBQ is selected they
	// replace the base prices; they are never added on top.
	BBQPriceAdult *int64
	BBQPriceChild *int64
	DisplayOrder  int
	Published     bool
}

type AccommodationOption struct {
	ID            string
	Name          string
	Description   string
	PriceOriginal int64
	// PriceDiscounted is the operative nightly/unit price.
	PriceDiscounted int64
	Unit            string
	DisplayOrder    int
	Published       bool
}

// Catalog is the fixed set of bookable offerings. One canonical value is
// injected into both the live quote calculator and the server-side
// recomputation so the two can never drift.
type Catalog struct {
	Combos         []ComboPackage
	DayTrips       []DayTripPackage
	Accommodations []AccommodationOption
}

func (c Catalog) Combo(id string) (ComboPackage, bool) {
	for _, p := range c.Combos {
		if p.ID == id {
			return p, true
		}
	}
	return ComboPackage{}, false
}

func (c Catalog) DayTrip(id string) (DayTripPackage, bool) {
	for _, p := range c.DayTrips {
		if p.ID == id {
			return p, true
		}
	}
	return DayTripPackage{}, false
}

// Accommodation resolves a lodging selection by id or by display name.
// The booking form sends the slug id; the notification payload carries the
// human-readable name, and both must resolve to the same option.
func (c Catalog) Accommodation(key string) (AccommodationOption, bool) {
	for _, a := range c.Accommodations {
		if a.ID == key || a.Name == key {
			return a, true
		}
	}
	return AccommodationOption{}, false
}

func pvnd(v int64) *int64 { return &v }

// DefaultCatalog returns the compiled-in offering tables. The seeder writes
// these into the content store; the booking flow prices against them directly.
func DefaultCatalog() Catalog {
	return Catalog{
		Combos: []ComboPackage{
			{
				ID: "combo-a", Name: "Gói A",
				Subtitle:   "Cắm trại glamping lều đơn tại lán lá Hạnh Ngộ",
				PriceAdult: 454000, PriceChild: 314000,
				PriceAdultOriginal: pvnd(649000), PriceChildOriginal: pvnd(449000),
				DisplayOrder: 1, Published: true,
			},
			{
				ID: "combo-a1", Name: "Gói A1",
				Subtitle:   "Tùy chọn lưu trú",
				PriceAdult: 524000, PriceChild: 384000,
				PriceAdultOriginal: pvnd(749000), PriceChildOriginal: pvnd(549000),
				RequiresAccommodation: true,
				DisplayOrder:          2, Published: true,
			},
			{
				ID: "combo-a2", Name: "Gói A2",
				Subtitle:   "Nhà gỗ Bungalow cao cấp An Bình",
				PriceAdult: 734000, PriceChild: 594000,
				PriceAdultOriginal: pvnd(1049000), PriceChildOriginal: pvnd(849000),
				DisplayOrder: 3, Published: true,
			},
		},
		DayTrips: []DayTripPackage{
			{
				ID: "daytrip-a", Name: "Gói A", Subtitle: "Nông trại tiêu chuẩn",
				PriceAdult: 84000, PriceChild: 59000,
				DisplayOrder: 1, Published: true,
			},
			{
				ID: "daytrip-a1", Name: "Gói A1", Subtitle: "Nông trại 5 sao",
				PriceAdult: 137000, PriceChild: 112000,
				BBQPriceAdult: pvnd(258000), BBQPriceChild: pvnd(209000),
				DisplayOrder: 2, Published: true,
			},
			{
				ID: "daytrip-a1-bbq", Name: "Gói A1 BBQ", Subtitle: "Nông trại 5 sao + BBQ lẩu nướng",
				PriceAdult: 258000, PriceChild: 209000,
				DisplayOrder: 3, Published: true,
			},
			{
				ID: "daytrip-a2", Name: "Gói A2", Subtitle: "Nông trại 5 sao+",
				PriceAdult: 189000, PriceChild: 165000,
				BBQPriceAdult: pvnd(314000), BBQPriceChild: pvnd(265000),
				DisplayOrder: 4, Published: true,
			},
			{
				ID: "daytrip-a2-bbq", Name: "Gói A2 BBQ", Subtitle: "Nông trại 5 sao+ + BBQ lẩu nướng",
				PriceAdult: 314000, PriceChild: 265000,
				DisplayOrder: 5, Published: true,
			},
		},
		Accommodations: []AccommodationOption{
			{
				ID: "lan-la-hanh-ngo", Name: "Lán lá Hạnh Ngộ",
				Description:   "Cắm trại lều trong lán, view sông, gắn kết thiên nhiên",
				PriceOriginal: 480000, PriceDiscounted: 336000, Unit: "lều/1 khách",
				DisplayOrder: 1, Published: true,
			},
			{
				ID: "homestay-an-yen", Name: "Homestay An Yên",
				Description:   "Nhà sàn, vách gỗ, mái cọ, view sông dưới tán dừa",
				PriceOriginal: 1000000, PriceDiscounted: 700000, Unit: "1 phòng/2 khách",
				DisplayOrder: 2, Published: true,
			},
			{
				ID: "bungalow-an-binh", Name: "Bungalow An Bình",
				Description:   "Nhà gỗ độc đáo, view sông, yên tĩnh, sang trọng",
				PriceOriginal: 1900000, PriceDiscounted: 1330000, Unit: "căn/2 khách",
				DisplayOrder: 3, Published: true,
			},
			{
				ID: "nha-thanh-thoi", Name: "Nhà Thảnh Thơi",
				Description:   "Family hotel, view vườn thoáng mát, 18-20 khách",
				PriceOriginal: 1300000, PriceDiscounted: 910000, Unit: "1 phòng/2 khách",
				DisplayOrder: 4, Published: true,
			},
			{
				ID: "nha-an-hoa", Name: "Nhà An Hòa",
				Description:   "Phong cách tân cổ điển, tiện nghi, gần trung tâm",
				PriceOriginal: 1300000, PriceDiscounted: 910000, Unit: "1 phòng/2 khách",
				DisplayOrder: 5, Published: true,
			},
			{
				ID: "leu-se-re-pok", Name: "Lều Sê Rê Pôk",
				Description:   "Glamping cao cấp, như khách sạn 4 sao, lãng mạn",
				PriceOriginal: 1200000, PriceDiscounted: 840000, Unit: "lều/2 khách",
				DisplayOrder: 6, Published: true,
			},
		},
	}
}
