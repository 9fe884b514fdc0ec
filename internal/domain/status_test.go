package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("PENDING"))
	assert.False(t, ValidOrderStatus("shipped"))
}

func TestValidInquiryStatus(t *testing.T) {
	for _, s := range []string{InquiryStatusNew, InquiryStatusContacted, InquiryStatusQuoted, InquiryStatusClosed} {
		assert.True(t, ValidInquiryStatus(s), s)
	}
	assert.False(t, ValidInquiryStatus("open"))
}

func TestValidContactStatus(t *testing.T) {
	for _, s := range []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied} {
		assert.True(t, ValidContactStatus(s), s)
	}
	assert.False(t, ValidContactStatus("archived"))
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryHomeDecor, Category3DSigns, CategoryCorporate, CategoryGifts} {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("jewelry"))
}
