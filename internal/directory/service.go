package directory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"community-seva/internal/eligibility"
	"community-seva/internal/platform/sentinel"
)

// Notifier forwards donor requests to the coordinator.
// *report.Service satisfies it.
type Notifier interface {
	NotifyCoordinator(ctx context.Context, text string) error
}

// Directory is the in-memory donor and blood bank registry.
type Directory struct {
	mu        sync.RWMutex
	donors    []Donor
	banks     []Bank
	districts []string

	notifier Notifier
	logger   *slog.Logger
}

// New returns a directory loaded with the seed donors, banks and districts.
// notifier may be nil, in which case donor requests are unavailable.
func New(notifier Notifier, logger *slog.Logger) *Directory {
	districts := slices.Clone(seedDistricts)
	collate.New(language.English).SortStrings(districts)

	return &Directory{
		donors:    slices.Clone(seedDonors),
		banks:     seedBanks(),
		districts: districts,
		notifier:  notifier,
		logger:    logger,
	}
}

func districtMatches(filter, district string) bool {
	return filter == "" || filter == AllDistricts || filter == district
}

// Donors returns donors matching the filter in seed order.
func (d *Directory) Donors(f DonorFilter) []Donor {
	group := strings.ToLower(strings.TrimSpace(f.BloodGroup))

	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Donor, 0, len(d.donors))
	for _, donor := range d.donors {
		if group != "" && !strings.Contains(strings.ToLower(string(donor.BloodGroup)), group) {
			continue
		}
		if !districtMatches(f.District, donor.District) {
			continue
		}
		out = append(out, donor)
	}
	return out
}

// Banks returns banks in the district. Inventories are copies.
func (d *Directory) Banks(district string) []Bank {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Bank, 0, len(d.banks))
	for _, b := range d.banks {
		if !districtMatches(district, b.District) {
			continue
		}
		b.Inventory = b.Inventory.clone()
		out = append(out, b)
	}
	return out
}

func (d *Directory) Districts() []string {
	return slices.Clone(d.districts)
}

// UpdateInventory replaces a bank's inventory.
func (d *Directory) UpdateInventory(ctx context.Context, bankID string, inv Inventory) (*Bank, error) {
	if err := validateInventory(inv); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.banks, func(b Bank) bool { return b.ID == bankID })
	if i < 0 {
		return nil, fmt.Errorf("blood bank %q: %w", bankID, sentinel.ErrNotFound)
	}
	d.banks[i].Inventory = inv.clone()

	d.logger.InfoContext(ctx, "blood bank inventory updated",
		"bank_id", bankID,
		"units", totalUnits(inv),
	)

	updated := d.banks[i]
	updated.Inventory = updated.Inventory.clone()
	return &updated, nil
}

func validateInventory(inv Inventory) error {
	verr := &sentinel.ValidationError{}
	for group, count := range inv {
		field := "inventory." + string(group)
		if !group.Valid() {
			verr.Add(field, fmt.Sprintf("Unknown blood group %q", group))
			continue
		}
		if count < 0 {
			verr.Add(field, "Units cannot be negative")
		}
	}
	return verr.ErrOrNil()
}

func totalUnits(inv Inventory) int {
	n := 0
	for _, c := range inv {
		n += c
	}
	return n
}

// RequestDonor asks the coordinator to put the seeker in touch with a donor.
// It returns an id the seeker can quote in follow-ups.
func (d *Directory) RequestDonor(ctx context.Context, donorID string, req DonorRequest) (uuid.UUID, error) {
	d.mu.RLock()
	i := slices.IndexFunc(d.donors, func(x Donor) bool { return x.ID == donorID })
	var donor Donor
	if i >= 0 {
		donor = d.donors[i]
	}
	d.mu.RUnlock()

	if i < 0 {
		return uuid.Nil, fmt.Errorf("donor %q: %w", donorID, sentinel.ErrNotFound)
	}
	if d.notifier == nil {
		return uuid.Nil, fmt.Errorf("donor requests: %w", sentinel.ErrUnavailable)
	}

	id := uuid.New()
	if err := d.notifier.NotifyCoordinator(ctx, requestMessage(id, donor, req)); err != nil {
		return uuid.Nil, fmt.Errorf("notify coordinator: %w", err)
	}

	d.logger.InfoContext(ctx, "donor request sent",
		"donor_request_id", id,
		"donor_id", donor.ID,
		"blood_group", donor.BloodGroup,
	)
	return id, nil
}

func requestMessage(id uuid.UUID, donor Donor, req DonorRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Blood donor request %s\n", id)
	fmt.Fprintf(&b, "Donor: %s (%s), %s, %s district\n", donor.Name, donor.BloodGroup, donor.Location, donor.District)
	if req.RequesterName != "" {
		fmt.Fprintf(&b, "Requested by: %s\n", req.RequesterName)
	}
	if req.Contact != "" {
		fmt.Fprintf(&b, "Contact: %s\n", req.Contact)
	}
	if req.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n", req.Note)
	}
	return strings.TrimRight(b.String(), "\n")
}

// groupsInStock lists the groups a bank can currently supply, in form order.
func groupsInStock(inv Inventory) []eligibility.BloodGroup {
	var out []eligibility.BloodGroup
	for _, g := range eligibility.BloodGroups() {
		if inv[g] > 0 {
			out = append(out, g)
		}
	}
	return out
}
