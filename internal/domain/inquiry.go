package domain

import "time"

const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusQuoted    = "quoted"
	InquiryStatusClosed    = "closed"
)

// Inquiry is an upload-and-quote request. The file picker on the intake form
// has no backend endpoint, so FileURL is only ever what the client sends.
type Inquiry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Material   *string   `json:"material"`
	Dimensions *string   `json:"dimensions"`
	Quantity   *int      `json:"quantity"`
	FileURL    *string   `json:"fileUrl"`
	Message    *string   `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusQuoted, InquiryStatusClosed:
		return true
	}
	return false
}
