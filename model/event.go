package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DateLayout is the wire and storage format of Event.Date
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and storage format of Event.Time
	TimeLayout = "15:04"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrInvalidDateTime = errors.New("invalid date or time format")
	ErrInvalidEvent    = errors.New("invalid event")
	ErrInvalidUser     = errors.New("invalid user")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Event is a scheduled event. Date and Time are kept in their layouts so that
// lexical order is chronological.
type Event struct {
	ID          int64  `json:"id" bson:"_id"`
	Title       string `json:"title" bson:"title" validate:"required,max=100"`
	Description string `json:"description" bson:"description"`
	Date        string `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" bson:"time" validate:"required,datetime=15:04"`
	Location    string `json:"location" bson:"location" validate:"max=100"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// StartsAt combines Date and Time in loc
func (e *Event) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	return t, nil
}

// ValidateEvent trims the event's text fields and checks them.
// Bad date or time values are reported as ErrInvalidDateTime.
func ValidateEvent(e *Event) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Date = strings.TrimSpace(e.Date)
	e.Time = strings.TrimSpace(e.Time)
	e.Location = strings.TrimSpace(e.Location)

	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	for _, fe := range verrs {
		if fe.Field() == "Date" || fe.Field() == "Time" {
			return fmt.Errorf("%w: %s", ErrInvalidDateTime, fe.Error())
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidEvent, verrs)
}

// SortEvents orders events by date, then time, then id
func SortEvents(events []*Event) {
	slices.SortStableFunc(events, func(a, b *Event) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Time, b.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
