package hike

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evannickel/hike-together/internal/badge"
)

// Record represents a persisted hike document under a family.
type Record struct {
	ID             string    `json:"id"`
	FamilyID       string    `json:"family_id"`
	Date           time.Time `json:"date"`
	Distance       float64   `json:"distance"`       // miles; 0 means not recorded
	ElevationGain  float64   `json:"elevation_gain"` // feet; 0 means not recorded
	Location       string    `json:"location,omitempty"`
	Difficulty     string    `json:"difficulty,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	LoggedByUserID string    `json:"logged_by_user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidDifficulties defines the allowed difficulty ratings.
var ValidDifficulties = []string{
	"easy",
	"moderate",
	"hard",
}

// CreateInput captures the data required to log a new hike.
type CreateInput struct {
	FamilyID      string
	UserID        string
	Date          time.Time
	Distance      float64
	ElevationGain float64
	Location      string
	Difficulty    string
	Notes         string
}

// Validate ensures the input fields meet the domain constraints.
func (i CreateInput) Validate() error {
	var problems []string

	if i.FamilyID == "" {
		problems = append(problems, "family_id is required")
	}
	if i.UserID == "" {
		problems = append(problems, "user_id is required")
	}
	if i.Date.IsZero() {
		problems = append(problems, "date is required")
	}
	if i.Distance < 0 {
		problems = append(problems, "distance must be non-negative")
	}
	if i.ElevationGain < 0 {
		problems = append(problems, "elevation_gain must be non-negative")
	}
	if i.Difficulty != "" && !validDifficulty(i.Difficulty) {
		problems = append(problems, fmt.Sprintf("difficulty must be one of: %s", strings.Join(ValidDifficulties, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// UpdateInput describes the fields a family member may change on an existing
// hike. Nil pointers leave the stored value untouched.
type UpdateInput struct {
	Date          *time.Time
	Distance      *float64
	ElevationGain *float64
	Location      *string
	Difficulty    *string
	Notes         *string
}

// Validate ensures the patch fields meet the domain constraints.
func (i UpdateInput) Validate() error {
	var problems []string

	if i.Date != nil && i.Date.IsZero() {
		problems = append(problems, "date must be a valid calendar date")
	}
	if i.Distance != nil && *i.Distance < 0 {
		problems = append(problems, "distance must be non-negative")
	}
	if i.ElevationGain != nil && *i.ElevationGain < 0 {
		problems = append(problems, "elevation_gain must be non-negative")
	}
	if i.Difficulty != nil && *i.Difficulty != "" && !validDifficulty(*i.Difficulty) {
		problems = append(problems, fmt.Sprintf("difficulty must be one of: %s", strings.Join(ValidDifficulties, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

func validDifficulty(d string) bool {
	for _, v := range ValidDifficulties {
		if v == d {
			return true
		}
	}
	return false
}

// Sample converts the record into the evaluator's input shape.
func (r Record) Sample() badge.Hike {
	return badge.Hike{Date: r.Date, Distance: r.Distance, ElevationGain: r.ElevationGain}
}

// Samples converts a record list for the evaluator.
func Samples(records []Record) []badge.Hike {
	out := make([]badge.Hike, 0, len(records))
	for _, r := range records {
		out = append(out, r.Sample())
	}
	return out
}

// Repository encapsulates persistence for hike records.
type Repository interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, familyID, hikeID string) (Record, error)
	Update(ctx context.Context, familyID, hikeID string, updates UpdateInput, updatedAt time.Time) (Record, error)
	Delete(ctx context.Context, familyID, hikeID string) error
	ListByFamily(ctx context.Context, familyID string) ([]Record, error)
}

// ErrNotFound indicates the requested hike does not exist for the family.
var ErrNotFound = errors.New("hike not found")

// ErrConflict indicates a duplicate identifier collision.
var ErrConflict = errors.New("hike already exists")

// ErrInvalidInput indicates the provided data failed validation.
var ErrInvalidInput = errors.New("invalid input")

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique identifiers for new records.
type IDGenerator interface {
	NewID() string
}
