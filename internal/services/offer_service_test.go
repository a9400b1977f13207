package services

import (
	"context"
	"errors"
	"testing"

	"mudanzasBack/internal/models"
)

func TestCanModifyOffer(t *testing.T) {
	offer := models.Offer{CompanyID: 7, Status: models.OfferStatusPending}

	if err := canModifyOffer(offer, 7); err != nil {
		t.Fatalf("owner of a pending offer: %v", err)
	}
	if err := canModifyOffer(offer, 8); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("foreign company: got %v, want ErrForbidden", err)
	}

	offer.Status = models.OfferStatusAccepted
	if err := canModifyOffer(offer, 7); !errors.Is(err, models.ErrOfferNotPending) {
		t.Fatalf("accepted offer: got %v, want ErrOfferNotPending", err)
	}

	// legacy spelling counts as declined
	offer.Status = "rejected"
	if err := canModifyOffer(offer, 7); !errors.Is(err, models.ErrOfferNotPending) {
		t.Fatalf("rejected offer: got %v, want ErrOfferNotPending", err)
	}
}

func TestWithdrawOfferRequiresConfirmation(t *testing.T) {
	s := &OfferService{}

	err := s.WithdrawOffer(context.Background(), 1, 7, false)
	if !errors.Is(err, models.ErrWithdrawConfirmation) {
		t.Fatalf("unconfirmed withdrawal: got %v, want ErrWithdrawConfirmation", err)
	}
}
