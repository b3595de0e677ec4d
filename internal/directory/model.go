package directory

import "community-seva/internal/eligibility"

// AllDistricts disables the district filter.
const AllDistricts = "All Districts"

type Donor struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	BloodGroup eligibility.BloodGroup `json:"blood_group"`
	Location   string                 `json:"location"`
	District   string                 `json:"district"`
}

// Inventory counts available units per blood group.
type Inventory map[eligibility.BloodGroup]int

func (inv Inventory) clone() Inventory {
	out := make(Inventory, len(inv))
	for g, n := range inv {
		out[g] = n
	}
	return out
}

type Bank struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	District  string    `json:"district"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Inventory Inventory `json:"inventory"`
}

// DonorFilter narrows the donor search. Zero values match everything.
type DonorFilter struct {
	// BloodGroup is matched as a case-insensitive substring, so "a" finds
	// A+, A-, AB+ and AB-.
	BloodGroup string
	District   string
}

// DonorRequest is what a seeker leaves when asking for a donor.
type DonorRequest struct {
	RequesterName string `json:"requester_name"`
	Contact       string `json:"contact"`
	Note          string `json:"note"`
}
