package repositories

import (
	"context"
	"database/sql"

	"mudanzasBack/internal/models"
)

type StatsRepository struct {
	DB *sql.DB
}

func (r *StatsRepository) GetAdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM requests`, &stats.Requests},
		{`SELECT COUNT(*) FROM requests WHERE (status = 'active' OR status = '') AND archived = false`, &stats.ActiveRequests},
		{`SELECT COUNT(*) FROM offers`, &stats.Offers},
		{`SELECT COUNT(*) FROM offers WHERE status = 'pending'`, &stats.PendingOffers},
		{`SELECT COUNT(*) FROM unlocks`, &stats.Unlocks},
		{`SELECT COUNT(*) FROM messages`, &stats.Messages},
		{`SELECT COUNT(*) FROM companies`, &stats.Companies},
		{`SELECT COUNT(*) FROM fraud_flags WHERE status = 'pending'`, &stats.PendingFraudFlags},
		{`SELECT COUNT(*) FROM verifications WHERE status = 'pending'`, &stats.PendingVerifications},
	}

	for _, c := range counts {
		if err := r.DB.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return models.AdminStats{}, err
		}
	}
	return stats, nil
}
