package sqlite

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/collet-david-pro/Voyages/internal/models"
)

var (
	demoLastNames = []string{"Dupont", "Martin", "Bernard", "Robert", "Richard",
		"Durand", "Dubois", "Moreau", "Simon", "Laurent"}
	demoFirstNames = []string{"Jean", "Pierre", "Marie", "Lucas", "Alice",
		"Hugo", "Chloé", "Louis", "Léa", "Gabriel"}
	demoClasses = []string{"3A", "3B", "3C"}
)

// SeedDemo injects a realistic demonstration data set: a full Berlin trip with
// thirty students in varied payment situations, and a smaller London trip.
func (s *Store) SeedDemo(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	today := fmtDate(time.Now())
	var cashMode int64
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM payment_modes WHERE label = 'Espèces'").Scan(&cashMode); err != nil {
		return fmt.Errorf("failed to find cash payment mode: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO trips (destination, departure_date, student_price,
			expected_students, chaperone_count, nights)
		VALUES ('Berlin, Allemagne', '2026-06-10', 62000, 30, 3, 4)`)
	if err != nil {
		return fmt.Errorf("failed to insert demo trip: %w", err)
	}
	berlinID, _ := res.LastInsertId()
	const berlinPrice = 62000

	for i := 0; i < 30; i++ {
		lastName := fmt.Sprintf("%s%d", demoLastNames[rand.Intn(len(demoLastNames))], i)
		firstName := fmt.Sprintf("%s%d", demoFirstNames[rand.Intn(len(demoFirstNames))], i)
		class := demoClasses[rand.Intn(len(demoClasses))]

		res, err := tx.ExecContext(ctx, `
			INSERT INTO participants (trip_id, kind, last_name, first_name, class_name, status)
			VALUES (?, ?, ?, ?, ?, ?)`,
			berlinID, models.KindStudent, lastName, firstName, class, models.StatusEnrolled)
		if err != nil {
			return fmt.Errorf("failed to insert demo participant: %w", err)
		}
		pID, _ := res.LastInsertId()

		res, err = tx.ExecContext(ctx,
			"INSERT INTO debts (participant_id, initial_amount) VALUES (?, ?)",
			pID, berlinPrice)
		if err != nil {
			return fmt.Errorf("failed to insert demo debt: %w", err)
		}
		debtID, _ := res.LastInsertId()

		pay := func(amount int64) error {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO payments (debt_id, mode_id, amount, paid_on)
				VALUES (?, ?, ?, ?)`, debtID, cashMode, amount, today)
			return err
		}

		switch c := rand.Intn(10) + 1; {
		case c <= 5: // partial payment
			if err := pay(int64(rand.Intn(30001) + 10000)); err != nil {
				return fmt.Errorf("failed to insert demo payment: %w", err)
			}
		case c <= 8: // paid in full
			if err := pay(berlinPrice); err != nil {
				return fmt.Errorf("failed to insert demo payment: %w", err)
			}
		case c == 9: // cancelled after paying, awaiting refund
			if err := pay(int64(rand.Intn(30001) + 10000)); err != nil {
				return fmt.Errorf("failed to insert demo payment: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				"UPDATE participants SET status = ? WHERE id = ?",
				models.StatusToRefund, pID); err != nil {
				return fmt.Errorf("failed to mark demo refund: %w", err)
			}
		}
		// last case: no payment yet
	}

	res, err = tx.ExecContext(ctx, `
		INSERT INTO trips (destination, departure_date, student_price,
			expected_students, chaperone_count, nights)
		VALUES ('Londres, Royaume-Uni', '2026-07-05', 45000, 15, 2, 3)`)
	if err != nil {
		return fmt.Errorf("failed to insert demo trip: %w", err)
	}
	londonID, _ := res.LastInsertId()

	for i := 0; i < 5; i++ {
		lastName := fmt.Sprintf("%s_v2_%d", demoLastNames[rand.Intn(len(demoLastNames))], i)
		firstName := fmt.Sprintf("%s_v2_%d", demoFirstNames[rand.Intn(len(demoFirstNames))], i)

		res, err := tx.ExecContext(ctx, `
			INSERT INTO participants (trip_id, kind, last_name, first_name, class_name, status)
			VALUES (?, ?, ?, ?, '4A', ?)`,
			londonID, models.KindStudent, lastName, firstName, models.StatusEnrolled)
		if err != nil {
			return fmt.Errorf("failed to insert demo participant: %w", err)
		}
		pID, _ := res.LastInsertId()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO debts (participant_id, initial_amount) VALUES (?, ?)",
			pID, 45000); err != nil {
			return fmt.Errorf("failed to insert demo debt: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit demo data: %w", err)
	}
	return nil
}

// SeedRefundCase creates a minimal refund scenario, a trip with one fully paid
// participant awaiting a refund, and returns the trip's id.
func (s *Store) SeedRefundCase(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	today := fmtDate(time.Now())

	res, err := tx.ExecContext(ctx, `
		INSERT INTO trips (destination, departure_date, student_price,
			expected_students, chaperone_count, nights)
		VALUES ('Test Remboursement', ?, 5000, 10, 1, 1)`, today)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test trip: %w", err)
	}
	tripID, _ := res.LastInsertId()

	res, err = tx.ExecContext(ctx, `
		INSERT INTO participants (trip_id, kind, last_name, first_name, class_name, status)
		VALUES (?, ?, 'Test', 'Remb', 'T1', ?)`,
		tripID, models.KindStudent, models.StatusToRefund)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test participant: %w", err)
	}
	pID, _ := res.LastInsertId()

	res, err = tx.ExecContext(ctx,
		"INSERT INTO debts (participant_id, initial_amount) VALUES (?, 5000)", pID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test debt: %w", err)
	}
	debtID, _ := res.LastInsertId()

	var cashMode int64
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM payment_modes WHERE label = 'Espèces'").Scan(&cashMode); err != nil {
		return 0, fmt.Errorf("failed to find cash payment mode: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO payments (debt_id, mode_id, amount, paid_on, reference)
		VALUES (?, ?, 5000, ?, 'Paiement test')`,
		debtID, cashMode, today); err != nil {
		return 0, fmt.Errorf("failed to insert test payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit test data: %w", err)
	}
	return tripID, nil
}
