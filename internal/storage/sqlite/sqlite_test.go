package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createTestTrip(t *testing.T, store *Store, ctx context.Context) *models.Trip {
	t.Helper()
	trip := &models.Trip{
		Destination:      "Berlin, Allemagne",
		DepartureDate:    time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StudentPrice:     62000,
		ExpectedStudents: 30,
		ChaperoneCount:   3,
		Nights:           4,
	}
	if err := store.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	return trip
}

func createTestParticipant(t *testing.T, store *Store, ctx context.Context, tripID, amount int64) *models.Participant {
	t.Helper()
	p := &models.Participant{
		TripID:    tripID,
		Kind:      models.KindStudent,
		LastName:  "Dupont",
		FirstName: "Alice",
		ClassName: "3A",
		Status:    models.StatusEnrolled,
	}
	if err := store.CreateParticipant(ctx, p, amount); err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}
	return p
}

func TestTrips(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateTrip generates ID", func(t *testing.T) {
		trip := createTestTrip(t, store, ctx)
		if trip.ID == 0 {
			t.Error("Expected trip ID to be generated")
		}
	})

	t.Run("GetTrip retrieves all fields", func(t *testing.T) {
		original := createTestTrip(t, store, ctx)
		got, err := store.GetTrip(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if got.Destination != original.Destination {
			t.Errorf("Destination mismatch: got %s, want %s", got.Destination, original.Destination)
		}
		if !got.DepartureDate.Equal(original.DepartureDate) {
			t.Errorf("DepartureDate mismatch: got %v, want %v", got.DepartureDate, original.DepartureDate)
		}
		if got.StudentPrice != 62000 {
			t.Errorf("StudentPrice mismatch: got %d, want 62000", got.StudentPrice)
		}
		if got.Nights != 4 {
			t.Errorf("Nights mismatch: got %d, want 4", got.Nights)
		}
	})

	t.Run("GetTrip unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetTrip(ctx, 99999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateTrip rewrites fields", func(t *testing.T) {
		trip := createTestTrip(t, store, ctx)
		trip.Destination = "Londres, Royaume-Uni"
		trip.StudentPrice = 45000
		if err := store.UpdateTrip(ctx, trip); err != nil {
			t.Fatalf("UpdateTrip failed: %v", err)
		}
		got, err := store.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if got.Destination != "Londres, Royaume-Uni" || got.StudentPrice != 45000 {
			t.Errorf("Update not applied: got %+v", got)
		}
	})

	t.Run("ListTrips counts enrolled and refundable", func(t *testing.T) {
		store := newTestStore(t)
		trip := createTestTrip(t, store, ctx)
		p1 := createTestParticipant(t, store, ctx, trip.ID, trip.StudentPrice)
		p2 := createTestParticipant(t, store, ctx, trip.ID, trip.StudentPrice)
		_ = p1
		if err := store.SetParticipantStatus(ctx, p2.ID, models.StatusToRefund); err != nil {
			t.Fatalf("SetParticipantStatus failed: %v", err)
		}

		trips, err := store.ListTrips(ctx)
		if err != nil {
			t.Fatalf("ListTrips failed: %v", err)
		}
		if len(trips) != 1 {
			t.Fatalf("Expected 1 trip, got %d", len(trips))
		}
		if trips[0].EnrolledCount != 1 {
			t.Errorf("EnrolledCount: got %d, want 1", trips[0].EnrolledCount)
		}
		if trips[0].RefundableCount != 1 {
			t.Errorf("RefundableCount: got %d, want 1", trips[0].RefundableCount)
		}
	})

	t.Run("DeleteTrip cascades and returns document paths", func(t *testing.T) {
		store := newTestStore(t)
		trip := createTestTrip(t, store, ctx)
		p := createTestParticipant(t, store, ctx, trip.ID, trip.StudentPrice)
		doc := &models.Document{
			TripID:     trip.ID,
			FileName:   "autorisation.pdf",
			StoredPath: "uploads/abc.pdf",
			UploadedOn: time.Now(),
		}
		if err := store.CreateDocument(ctx, doc); err != nil {
			t.Fatalf("CreateDocument failed: %v", err)
		}

		paths, err := store.DeleteTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("DeleteTrip failed: %v", err)
		}
		if len(paths) != 1 || paths[0] != "uploads/abc.pdf" {
			t.Errorf("Expected document path back, got %v", paths)
		}
		if _, err := store.GetParticipant(ctx, p.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected participant cascade delete, got %v", err)
		}
	})
}

func TestParticipants(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	trip := createTestTrip(t, store, ctx)

	t.Run("CreateParticipant opens debt at initial amount", func(t *testing.T) {
		p := createTestParticipant(t, store, ctx, trip.ID, 62000)
		debt, err := store.GetDebtByParticipant(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetDebtByParticipant failed: %v", err)
		}
		if debt.InitialAmount != 62000 {
			t.Errorf("InitialAmount: got %d, want 62000", debt.InitialAmount)
		}
		if debt.DiscountAmount != 0 {
			t.Errorf("DiscountAmount: got %d, want 0", debt.DiscountAmount)
		}
	})

	t.Run("GetAccount sums payments", func(t *testing.T) {
		p := createTestParticipant(t, store, ctx, trip.ID, 62000)
		debt, err := store.GetDebtByParticipant(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetDebtByParticipant failed: %v", err)
		}
		modes, err := store.ListPaymentModes(ctx)
		if err != nil || len(modes) == 0 {
			t.Fatalf("ListPaymentModes failed: %v", err)
		}
		for _, amount := range []int64{20000, 15000} {
			pay := &models.Payment{DebtID: debt.ID, ModeID: modes[0].ID, Amount: amount, PaidOn: time.Now()}
			if err := store.CreatePayment(ctx, pay); err != nil {
				t.Fatalf("CreatePayment failed: %v", err)
			}
		}

		acc, err := store.GetAccount(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetAccount failed: %v", err)
		}
		if acc.Paid != 35000 {
			t.Errorf("Paid: got %d, want 35000", acc.Paid)
		}
		if acc.InitialAmount != 62000 {
			t.Errorf("InitialAmount: got %d, want 62000", acc.InitialAmount)
		}
	})

	t.Run("CountEnrolled ignores other statuses", func(t *testing.T) {
		store := newTestStore(t)
		trip := createTestTrip(t, store, ctx)
		createTestParticipant(t, store, ctx, trip.ID, 100)
		p2 := createTestParticipant(t, store, ctx, trip.ID, 100)
		if err := store.SetParticipantStatus(ctx, p2.ID, models.StatusWaitlisted); err != nil {
			t.Fatalf("SetParticipantStatus failed: %v", err)
		}
		n, err := store.CountEnrolled(ctx, trip.ID)
		if err != nil {
			t.Fatalf("CountEnrolled failed: %v", err)
		}
		if n != 1 {
			t.Errorf("CountEnrolled: got %d, want 1", n)
		}
	})

	t.Run("ToggleParticipantFlag flips and reports new value", func(t *testing.T) {
		p := createTestParticipant(t, store, ctx, trip.ID, 100)
		on, err := store.ToggleParticipantFlag(ctx, p.ID, models.FlagCommitmentForm)
		if err != nil {
			t.Fatalf("ToggleParticipantFlag failed: %v", err)
		}
		if !on {
			t.Error("Expected flag on after first toggle")
		}
		on, err = store.ToggleParticipantFlag(ctx, p.ID, models.FlagCommitmentForm)
		if err != nil {
			t.Fatalf("ToggleParticipantFlag failed: %v", err)
		}
		if on {
			t.Error("Expected flag off after second toggle")
		}
	})

	t.Run("FinalizeRefund records negative payment and cancels", func(t *testing.T) {
		p := createTestParticipant(t, store, ctx, trip.ID, 5000)
		debt, err := store.GetDebtByParticipant(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetDebtByParticipant failed: %v", err)
		}
		modeID, err := store.EnsurePaymentMode(ctx, models.ModeRefund)
		if err != nil {
			t.Fatalf("EnsurePaymentMode failed: %v", err)
		}
		if err := store.SetParticipantStatus(ctx, p.ID, models.StatusToRefund); err != nil {
			t.Fatalf("SetParticipantStatus failed: %v", err)
		}

		if err := store.FinalizeRefund(ctx, p.ID, debt.ID, modeID, 5000, "Remboursement annulation"); err != nil {
			t.Fatalf("FinalizeRefund failed: %v", err)
		}

		got, err := store.GetParticipant(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetParticipant failed: %v", err)
		}
		if got.Status != models.StatusCancelled {
			t.Errorf("Status: got %s, want %s", got.Status, models.StatusCancelled)
		}
		if !got.RefundValidated {
			t.Error("Expected refund_validated to be set")
		}
		total, err := store.SumPayments(ctx, debt.ID)
		if err != nil {
			t.Fatalf("SumPayments failed: %v", err)
		}
		if total != -5000 {
			t.Errorf("Payment sum after refund: got %d, want -5000", total)
		}
	})
}

func TestPaymentModes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("seeded modes are present", func(t *testing.T) {
		modes, err := store.ListPaymentModes(ctx)
		if err != nil {
			t.Fatalf("ListPaymentModes failed: %v", err)
		}
		labels := make(map[string]bool)
		for _, m := range modes {
			labels[m.Label] = true
		}
		for _, want := range []string{"Espèces", "Chèque", "Virement"} {
			if !labels[want] {
				t.Errorf("Expected seeded mode %q", want)
			}
		}
	})

	t.Run("duplicate label yields ErrDuplicate", func(t *testing.T) {
		if err := store.CreatePaymentMode(ctx, "Espèces"); !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("Expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("deleting a referenced mode yields ErrInUse", func(t *testing.T) {
		trip := createTestTrip(t, store, ctx)
		p := createTestParticipant(t, store, ctx, trip.ID, 100)
		debt, err := store.GetDebtByParticipant(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetDebtByParticipant failed: %v", err)
		}
		modes, _ := store.ListPaymentModes(ctx)
		pay := &models.Payment{DebtID: debt.ID, ModeID: modes[0].ID, Amount: 100, PaidOn: time.Now()}
		if err := store.CreatePayment(ctx, pay); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		if err := store.DeletePaymentMode(ctx, modes[0].ID); !errors.Is(err, storage.ErrInUse) {
			t.Errorf("Expected ErrInUse, got %v", err)
		}
	})

	t.Run("EnsurePaymentMode is idempotent", func(t *testing.T) {
		id1, err := store.EnsurePaymentMode(ctx, models.ModeSocialFund)
		if err != nil {
			t.Fatalf("EnsurePaymentMode failed: %v", err)
		}
		id2, err := store.EnsurePaymentMode(ctx, models.ModeSocialFund)
		if err != nil {
			t.Fatalf("EnsurePaymentMode failed: %v", err)
		}
		if id1 != id2 {
			t.Errorf("Expected stable id, got %d then %d", id1, id2)
		}
	})
}

func TestSocialFund(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	trip := createTestTrip(t, store, ctx)
	p := createTestParticipant(t, store, ctx, trip.ID, 62000)

	t.Run("CreateRequest and ListRequests", func(t *testing.T) {
		if err := store.CreateRequest(ctx, p.ID, 20000); err != nil {
			t.Fatalf("CreateRequest failed: %v", err)
		}
		reqs, err := store.ListRequests(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListRequests failed: %v", err)
		}
		if len(reqs) != 1 {
			t.Fatalf("Expected 1 request, got %d", len(reqs))
		}
		if reqs[0].Status != models.RequestPending {
			t.Errorf("Status: got %s, want pending", reqs[0].Status)
		}
		if reqs[0].ParticipantLastName != "Dupont" {
			t.Errorf("Expected joined participant name, got %q", reqs[0].ParticipantLastName)
		}
	})

	t.Run("ApplyGrant pays and discounts in one transaction", func(t *testing.T) {
		reqs, _ := store.ListRequests(ctx, trip.ID)
		req := reqs[0]
		debt, err := store.GetDebtByParticipant(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetDebtByParticipant failed: %v", err)
		}
		modeID, err := store.EnsurePaymentMode(ctx, models.ModeSocialFund)
		if err != nil {
			t.Fatalf("EnsurePaymentMode failed: %v", err)
		}

		if err := store.ApplyGrant(ctx, req.ID, debt.ID, modeID, 15000, time.Now(), "Aide fonds social"); err != nil {
			t.Fatalf("ApplyGrant failed: %v", err)
		}

		debt, err = store.GetDebtByParticipant(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetDebtByParticipant failed: %v", err)
		}
		if debt.DiscountAmount != 15000 {
			t.Errorf("DiscountAmount: got %d, want 15000", debt.DiscountAmount)
		}
		total, _ := store.SumPayments(ctx, debt.ID)
		if total != 15000 {
			t.Errorf("Payment sum: got %d, want 15000", total)
		}
		got, err := store.GetRequest(ctx, req.ID)
		if err != nil {
			t.Fatalf("GetRequest failed: %v", err)
		}
		if got.Status != models.RequestApproved || !got.Processed {
			t.Errorf("Expected approved+processed, got %+v", got)
		}
	})

	t.Run("ApplyGrant on processed request returns ErrNotFound", func(t *testing.T) {
		reqs, _ := store.ListRequests(ctx, trip.ID)
		req := reqs[0]
		debt, _ := store.GetDebtByParticipant(ctx, p.ID)
		modeID, _ := store.EnsurePaymentMode(ctx, models.ModeSocialFund)
		err := store.ApplyGrant(ctx, req.ID, debt.ID, modeID, 1000, time.Now(), "")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second decision, got %v", err)
		}
		// and no financial side effect
		debt, _ = store.GetDebtByParticipant(ctx, p.ID)
		if debt.DiscountAmount != 15000 {
			t.Errorf("DiscountAmount changed after rejected re-decision: %d", debt.DiscountAmount)
		}
	})

	t.Run("RejectRequest marks processed without bookkeeping", func(t *testing.T) {
		p2 := createTestParticipant(t, store, ctx, trip.ID, 62000)
		if err := store.CreateRequest(ctx, p2.ID, 10000); err != nil {
			t.Fatalf("CreateRequest failed: %v", err)
		}
		reqs, _ := store.ListRequests(ctx, trip.ID)
		var reqID int64
		for _, r := range reqs {
			if r.ParticipantID == p2.ID {
				reqID = r.ID
			}
		}
		if err := store.RejectRequest(ctx, reqID, time.Now()); err != nil {
			t.Fatalf("RejectRequest failed: %v", err)
		}
		got, _ := store.GetRequest(ctx, reqID)
		if got.Status != models.RequestRejected || !got.Processed {
			t.Errorf("Expected rejected+processed, got %+v", got)
		}
		debt, _ := store.GetDebtByParticipant(ctx, p2.ID)
		if debt.DiscountAmount != 0 {
			t.Errorf("Rejection must not discount, got %d", debt.DiscountAmount)
		}
	})
}

func TestBudget(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	trip := createTestTrip(t, store, ctx)

	t.Run("seeded categories are present", func(t *testing.T) {
		cats, err := store.ListBudgetCategories(ctx)
		if err != nil {
			t.Fatalf("ListBudgetCategories failed: %v", err)
		}
		if len(cats) < 4 {
			t.Errorf("Expected at least 4 seeded categories, got %d", len(cats))
		}
	})

	t.Run("CreateBudgetItem and list order", func(t *testing.T) {
		cats, _ := store.ListBudgetCategories(ctx)
		rev := &models.BudgetItem{TripID: trip.ID, Kind: models.BudgetRevenue, CategoryID: cats[0].ID, Description: "Subvention FSE", Amount: 50000}
		exp := &models.BudgetItem{TripID: trip.ID, Kind: models.BudgetExpense, CategoryID: cats[0].ID, Description: "Car", Amount: 120000}
		for _, it := range []*models.BudgetItem{rev, exp} {
			if err := store.CreateBudgetItem(ctx, it); err != nil {
				t.Fatalf("CreateBudgetItem failed: %v", err)
			}
		}
		items, err := store.ListBudgetItems(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListBudgetItems failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("Expected 2 items, got %d", len(items))
		}
		if items[0].Kind != models.BudgetExpense {
			t.Errorf("Expected expenses first, got %s", items[0].Kind)
		}
		if items[0].CategoryName == "" {
			t.Error("Expected joined category name")
		}
	})

	t.Run("DeleteBudgetItem returns trip id", func(t *testing.T) {
		items, _ := store.ListBudgetItems(ctx, trip.ID)
		tripID, err := store.DeleteBudgetItem(ctx, items[0].ID)
		if err != nil {
			t.Fatalf("DeleteBudgetItem failed: %v", err)
		}
		if tripID != trip.ID {
			t.Errorf("Trip id: got %d, want %d", tripID, trip.ID)
		}
	})

	t.Run("deleting a used category yields ErrInUse", func(t *testing.T) {
		items, _ := store.ListBudgetItems(ctx, trip.ID)
		if len(items) == 0 {
			t.Fatal("Expected a remaining budget item")
		}
		if err := store.DeleteBudgetCategory(ctx, items[0].CategoryID); !errors.Is(err, storage.ErrInUse) {
			t.Errorf("Expected ErrInUse, got %v", err)
		}
	})

	t.Run("duplicate category name yields ErrDuplicate", func(t *testing.T) {
		if err := store.CreateBudgetCategory(ctx, "Transport"); !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("Expected ErrDuplicate, got %v", err)
		}
	})
}

func TestInstitution(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("default row exists", func(t *testing.T) {
		inst, err := store.GetInstitution(ctx)
		if err != nil {
			t.Fatalf("GetInstitution failed: %v", err)
		}
		if inst.Name == "" {
			t.Error("Expected a default institution name")
		}
	})

	t.Run("SaveInstitution keeps image paths", func(t *testing.T) {
		if _, err := store.SetInstitutionImage(ctx, storage.ImageLogo, "uploads/logo.png"); err != nil {
			t.Fatalf("SetInstitutionImage failed: %v", err)
		}
		inst, _ := store.GetInstitution(ctx)
		inst.Name = "Collège Jean Moulin"
		inst.SignatureCity = "Lyon"
		if err := store.SaveInstitution(ctx, inst); err != nil {
			t.Fatalf("SaveInstitution failed: %v", err)
		}
		got, _ := store.GetInstitution(ctx)
		if got.Name != "Collège Jean Moulin" || got.SignatureCity != "Lyon" {
			t.Errorf("Text fields not saved: %+v", got)
		}
		if got.LogoPath != "uploads/logo.png" {
			t.Errorf("LogoPath lost on save: %q", got.LogoPath)
		}
	})

	t.Run("SetInstitutionImage returns previous path", func(t *testing.T) {
		prev, err := store.SetInstitutionImage(ctx, storage.ImageLogo, "uploads/logo2.png")
		if err != nil {
			t.Fatalf("SetInstitutionImage failed: %v", err)
		}
		if prev != "uploads/logo.png" {
			t.Errorf("Previous path: got %q, want uploads/logo.png", prev)
		}
	})
}

func TestDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	trip := createTestTrip(t, store, ctx)

	t.Run("create, get and delete", func(t *testing.T) {
		doc := &models.Document{
			TripID:     trip.ID,
			FileName:   "liste élèves.xlsx",
			StoredPath: "uploads/xyz.xlsx",
			UploadedOn: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		}
		if err := store.CreateDocument(ctx, doc); err != nil {
			t.Fatalf("CreateDocument failed: %v", err)
		}
		got, err := store.GetDocument(ctx, doc.ID)
		if err != nil {
			t.Fatalf("GetDocument failed: %v", err)
		}
		if got.FileName != doc.FileName {
			t.Errorf("FileName: got %q, want %q", got.FileName, doc.FileName)
		}
		path, err := store.DeleteDocument(ctx, doc.ID)
		if err != nil {
			t.Fatalf("DeleteDocument failed: %v", err)
		}
		if path != "uploads/xyz.xlsx" {
			t.Errorf("Stored path: got %q, want uploads/xyz.xlsx", path)
		}
		if _, err := store.GetDocument(ctx, doc.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestAdmin(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("SeedDemo creates two trips with participants", func(t *testing.T) {
		if err := store.SeedDemo(ctx); err != nil {
			t.Fatalf("SeedDemo failed: %v", err)
		}
		trips, err := store.ListTrips(ctx)
		if err != nil {
			t.Fatalf("ListTrips failed: %v", err)
		}
		if len(trips) != 2 {
			t.Fatalf("Expected 2 trips, got %d", len(trips))
		}
		var total int
		for _, tr := range trips {
			accounts, err := store.ListAccounts(ctx, tr.ID)
			if err != nil {
				t.Fatalf("ListAccounts failed: %v", err)
			}
			total += len(accounts)
		}
		if total != 35 {
			t.Errorf("Expected 35 demo participants, got %d", total)
		}
	})

	t.Run("SeedRefundCase creates a refundable participant", func(t *testing.T) {
		store := newTestStore(t)
		tripID, err := store.SeedRefundCase(ctx)
		if err != nil {
			t.Fatalf("SeedRefundCase failed: %v", err)
		}
		accounts, err := store.ListAccounts(ctx, tripID)
		if err != nil {
			t.Fatalf("ListAccounts failed: %v", err)
		}
		if len(accounts) != 1 {
			t.Fatalf("Expected 1 participant, got %d", len(accounts))
		}
		if accounts[0].Status != models.StatusToRefund {
			t.Errorf("Status: got %s, want %s", accounts[0].Status, models.StatusToRefund)
		}
		if accounts[0].Paid != 5000 {
			t.Errorf("Paid: got %d, want 5000", accounts[0].Paid)
		}
	})

	t.Run("Reset wipes data and reseeds defaults", func(t *testing.T) {
		if err := store.Reset(ctx); err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		trips, err := store.ListTrips(ctx)
		if err != nil {
			t.Fatalf("ListTrips failed: %v", err)
		}
		if len(trips) != 0 {
			t.Errorf("Expected empty trips after reset, got %d", len(trips))
		}
		modes, err := store.ListPaymentModes(ctx)
		if err != nil {
			t.Fatalf("ListPaymentModes failed: %v", err)
		}
		if len(modes) == 0 {
			t.Error("Expected default payment modes after reset")
		}
	})
}

func TestDateRoundTrip(t *testing.T) {
	if got := fmtDate(time.Time{}); got != "" {
		t.Errorf("fmtDate(zero): got %q, want empty", got)
	}
	if got := parseDate(""); !got.IsZero() {
		t.Errorf("parseDate(empty): got %v, want zero", got)
	}
	d := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	if got := parseDate(fmtDate(d)); !got.Equal(d) {
		t.Errorf("round trip: got %v, want %v", got, d)
	}
}
