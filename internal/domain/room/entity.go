package room

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrTitleRequired = errors.New("room title is required")
	ErrInvalidNumber = errors.New("room number must be positive")
)

// Room is identified by its number, which is assigned as one more than the
// highest existing number.
type Room struct {
	number      int
	title       string
	description string
	address     string
	isOpen      bool
	isActive    bool
	image       *string
	createdAt   time.Time
	updatedAt   time.Time
}

type Attributes struct {
	Title       string
	Description string
	Address     string
}

func (a Attributes) normalize() (Attributes, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.Description = strings.TrimSpace(a.Description)
	a.Address = strings.TrimSpace(a.Address)
	if a.Title == "" {
		return Attributes{}, ErrTitleRequired
	}
	return a, nil
}

func NewRoom(number int, attrs Attributes, image *string, now time.Time) (*Room, error) {
	if number <= 0 || number > math.MaxInt32 {
		return nil, ErrInvalidNumber
	}
	attrs, err := attrs.normalize()
	if err != nil {
		return nil, err
	}
	return &Room{
		number:      number,
		title:       attrs.Title,
		description: attrs.Description,
		address:     attrs.Address,
		isOpen:      false,
		isActive:    true,
		image:       image,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRoom(
	number int,
	attrs Attributes,
	isOpen, isActive bool,
	image *string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		number:      number,
		title:       attrs.Title,
		description: attrs.Description,
		address:     attrs.Address,
		isOpen:      isOpen,
		isActive:    isActive,
		image:       image,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) UpdateAttributes(attrs Attributes, now time.Time) error {
	attrs, err := attrs.normalize()
	if err != nil {
		return err
	}
	r.title = attrs.Title
	r.description = attrs.Description
	r.address = attrs.Address
	r.updatedAt = now
	return nil
}

func (r *Room) SetActive(active bool, now time.Time) {
	r.isActive = active
	r.updatedAt = now
}

// ReplaceImage returns the previous image so the caller can remove the file.
func (r *Room) ReplaceImage(image *string, now time.Time) (previous *string) {
	previous = r.image
	r.image = image
	r.updatedAt = now
	return previous
}

func (r *Room) Open(now time.Time) {
	r.isOpen = true
	r.updatedAt = now
}

func (r *Room) Close(now time.Time) {
	r.isOpen = false
	r.updatedAt = now
}

func (r *Room) Number() int { return r.number }
func (r *Room) Attributes() Attributes {
	return Attributes{Title: r.title, Description: r.description, Address: r.address}
}
func (r *Room) Title() string        { return r.title }
func (r *Room) IsOpen() bool         { return r.isOpen }
func (r *Room) IsActive() bool       { return r.isActive }
func (r *Room) Image() *string       { return r.image }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
