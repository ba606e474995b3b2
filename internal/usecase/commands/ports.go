package commands

import (
	"context"
	"io"
)

// EventPublisher emits lifecycle events after a commit. Delivery failures
// are logged and never undo the write.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

type RoomCacheInvalidator interface {
	InvalidateRoom(ctx context.Context, roomNumber int) error
}

// ImageStore persists room images and returns the stored file name.
type ImageStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
}

type ImageUpload struct {
	Filename string
	Content  io.Reader
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventBookingDeleted   = "booking.deleted"
)

// BookingEvent is the message body for booking lifecycle events.
type BookingEvent struct {
	BookingID  string `json:"bookingId"`
	RoomNumber int    `json:"roomNumber"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	IsActive   bool   `json:"isActive"`
	Actor      string `json:"actor"`
}
