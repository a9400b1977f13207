package services

import (
	"errors"
	"testing"

	"mudanzasBack/internal/models"
)

func TestMemberRole(t *testing.T) {
	chat := models.Chat{CustomerID: 3, CompanyID: 9}

	role, err := memberRole(chat, 3)
	if err != nil || role != models.RoleCustomer {
		t.Fatalf("customer side: role=%q err=%v", role, err)
	}

	role, err = memberRole(chat, 9)
	if err != nil || role != models.RoleCompany {
		t.Fatalf("company side: role=%q err=%v", role, err)
	}

	if _, err := memberRole(chat, 4); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("outsider: got %v, want ErrForbidden", err)
	}
}
