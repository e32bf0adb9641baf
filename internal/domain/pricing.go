package domain

import "time"

// Selection is the booking state the quote is computed from. Prices are a
// function of this struct and the catalog only; client-submitted amounts are
// never an input.
type Selection struct {
	ServiceType       ServiceType
	PackageID         string
	AccommodationType string // option id or display name
	AddBBQ            bool
	AdultsCount       int
	ChildrenCount     int
	CheckIn           string // YYYY-MM-DD, may be empty
	CheckOut          string
}

// ComputeTotal maps a selection to a VND total against the given catalog.
// Pure: safe to call on every input change client-side and again server-side
// for trust-verified recomputation. Missing lookups degrade to 0 so callers
// can treat a zero quote as "selection incomplete".
func ComputeTotal(sel Selection, cat Catalog) int64 {
	adults := int64(max(sel.AdultsCount, 0))
	children := int64(max(sel.ChildrenCount, 0))

	switch sel.ServiceType {
	case ServiceCombo:
		p, ok := cat.Combo(sel.PackageID)
		if !ok {
			return 0
		}
		total := adults*p.PriceAdult + children*p.PriceChild
		// combo-a1 prices a lodging unit on top; flat add, not per guest
		// and not per night.
		if p.RequiresAccommodation {
			if a, ok := cat.Accommodation(sel.AccommodationType); ok {
				total += a.PriceDiscounted
			}
		}
		return total

	case ServiceDayTrip:
		p, ok := cat.DayTrip(sel.PackageID)
		if !ok {
			return 0
		}
		// BBQ prices substitute for the base prices, never add to them.
		if sel.AddBBQ && p.BBQPriceAdult != nil && p.BBQPriceChild != nil {
			return adults*(*p.BBQPriceAdult) + children*(*p.BBQPriceChild)
		}
		return adults*p.PriceAdult + children*p.PriceChild

	case ServiceStay:
		a, ok := cat.Accommodation(sel.AccommodationType)
		if !ok {
			return 0
		}
		return a.PriceDiscounted * int64(Nights(sel.CheckIn, sel.CheckOut))

	default:
		// team-building has no catalog price; quoted on request.
		return 0
	}
}

// CanSubmit reports whether the selection step is complete enough to move on
// to contact info. Independent of pricing so the UI can gate progression
// without a quote.
func CanSubmit(sel Selection, cat Catalog) bool {
	switch sel.ServiceType {
	case ServiceTeamBuilding:
		return true
	case ServiceStay:
		return sel.AccommodationType != ""
	}
	if sel.PackageID == "" {
		return false
	}
	if p, ok := cat.Combo(sel.PackageID); ok && p.RequiresAccommodation {
		return sel.AccommodationType != ""
	}
	return true
}

// Nights counts billable nights between two YYYY-MM-DD dates, rounding
// partial days up. Missing or unordered dates default to a single night.
func Nights(checkIn, checkOut string) int {
	in, err1 := parseDate(checkIn)
	out, err2 := parseDate(checkOut)
	if err1 != nil || err2 != nil || !out.After(in) {
		return 1
	}
	d := out.Sub(in)
	n := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		n++
	}
	return n
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
