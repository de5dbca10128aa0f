package handler

import "github.com/mwadley/swapshop/internal/domain"

// UserDTO is the JSON representation of a user. The password hash is
// deliberately absent.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Forename string `json:"forename"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Forename: u.Forename,
		Surname:  u.Surname,
		Email:    u.Email,
	}
}

// ListingDTO is the JSON representation of a listing. In the public feed
// and search results ownerUsername and swapList are empty strings; only
// the single-listing metadata view fills them in.
type ListingDTO struct {
	ID            int64  `json:"id"`
	OwnerID       int64  `json:"ownerId,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageLocation string `json:"imageLocation"`
	SwapList      string `json:"swapList"`
	OwnerUsername string `json:"ownerUsername"`
}

func toSummaryDTO(s domain.ListingSummary) ListingDTO {
	return ListingDTO{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		ImageLocation: s.ImageLocation,
	}
}

func toSummaryDTOs(summaries []domain.ListingSummary) []ListingDTO {
	dtos := make([]ListingDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = toSummaryDTO(s)
	}
	return dtos
}

func toMetadataDTO(m *domain.ListingMetadata) ListingDTO {
	return ListingDTO{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		Description:   m.Description,
		ImageLocation: m.ImageLocation,
		SwapList:      m.SwapList,
		OwnerUsername: m.OwnerUsername,
	}
}
