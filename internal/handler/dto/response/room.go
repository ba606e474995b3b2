package response

import (
	"path"
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// RoomResponse renders the stored image name as a public URL.
type RoomResponse struct {
	RoomNumber  int       `json:"roomNumber"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	IsOpen      bool      `json:"isOpen"`
	IsActive    bool      `json:"isActive"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomMutationResponse struct {
	Message string        `json:"message"`
	Room    *RoomResponse `json:"room,omitempty"`
}

func FromRoomView(v *queries.RoomView, publicUploadPath string) *RoomResponse {
	var res RoomResponse
	_ = copier.Copy(&res, v)
	res.Image = ImageURL(publicUploadPath, v.Image)
	return &res
}

func FromRoomViews(views []*queries.RoomView, publicUploadPath string) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = FromRoomView(v, publicUploadPath)
	}
	return res
}

func ImageURL(publicUploadPath string, image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	url := path.Join("/", publicUploadPath, *image)
	return &url
}
