package pdf

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/collet-david-pro/Voyages/internal/models"
)

func testTrip() models.Trip {
	return models.Trip{
		ID:               1,
		Destination:      "Berlin, Allemagne",
		DepartureDate:    time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StudentPrice:     62000,
		ExpectedStudents: 30,
		ChaperoneCount:   3,
		Nights:           4,
	}
}

func testAccount(status models.Status, paid int64) models.ParticipantAccount {
	return models.ParticipantAccount{
		Participant: models.Participant{
			ID:        1,
			TripID:    1,
			Kind:      models.KindStudent,
			LastName:  "Dupont",
			FirstName: "Léa",
			ClassName: "3A",
			Status:    status,
		},
		DebtID:        1,
		InitialAmount: 62000,
		Paid:          paid,
	}
}

func checkPDF(t *testing.T, data []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:min(len(data), 8)])
	}
	if len(data) < 500 {
		t.Fatalf("suspiciously small document: %d bytes", len(data))
	}
}

func TestDocuments(t *testing.T) {
	g := NewGenerator()
	lh := Letterhead{
		Name:            "Collège Jean Moulin",
		SignatureCity:   "Lyon",
		CertificateText: "Le service de gestion atteste des versements listés ci-dessous.",
	}
	trip := testTrip()
	accounts := []models.ParticipantAccount{
		testAccount(models.StatusEnrolled, 35000),
		testAccount(models.StatusWaitlisted, 0),
	}

	t.Run("enrolled list", func(t *testing.T) {
		data, err := g.EnrolledList(lh, trip, accounts)
		checkPDF(t, data, err)
	})

	t.Run("edited list", func(t *testing.T) {
		rows := []EditedRow{
			{LastName: "Dupont", FirstName: "Léa", ClassName: "3A", Initial: 62000, Discount: 10000, Paid: 30000},
			{LastName: "Martin", FirstName: "Jean", ClassName: "3B", Initial: 62000, Paid: 62000},
		}
		data, err := g.EditedList(lh, trip, rows)
		checkPDF(t, data, err)
	})

	t.Run("filtered list", func(t *testing.T) {
		for _, f := range []ListFilter{FilterAll, FilterPaid, FilterUnpaid} {
			data, err := g.FilteredList(lh, trip, accounts, f)
			checkPDF(t, data, err)
		}
	})

	t.Run("payment certificate", func(t *testing.T) {
		payments := []models.Payment{
			{Amount: 20000, ModeLabel: "Chèque", PaidOn: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
			{Amount: 15000, ModeLabel: "Espèces", PaidOn: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
		}
		data, err := g.PaymentCertificate(lh, trip, accounts[0].Participant, payments)
		checkPDF(t, data, err)
	})

	t.Run("refund certificate", func(t *testing.T) {
		data, err := g.RefundCertificate(lh, trip, accounts[0].Participant, 35000)
		checkPDF(t, data, err)
	})

	t.Run("social fund notice approved", func(t *testing.T) {
		req := models.SocialFundRequest{
			Status:        models.RequestApproved,
			GrantedAmount: 25000,
			DecidedOn:     time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		}
		data, err := g.SocialFundNotice(lh, trip, accounts[0].Participant, req)
		checkPDF(t, data, err)
	})

	t.Run("social fund notice rejected", func(t *testing.T) {
		req := models.SocialFundRequest{Status: models.RequestRejected}
		data, err := g.SocialFundNotice(lh, trip, accounts[0].Participant, req)
		checkPDF(t, data, err)
	})

	t.Run("budget report", func(t *testing.T) {
		revenues := []models.BudgetItem{
			{Kind: models.BudgetRevenue, CategoryName: "Subventions", Description: "Conseil départemental", Amount: 500000},
		}
		expenses := []models.BudgetItem{
			{Kind: models.BudgetExpense, CategoryName: "Transport", Description: "Car aller-retour", Amount: 320000},
			{Kind: models.BudgetExpense, CategoryName: "Hébergement", Description: "Auberge 4 nuits", Amount: 410000},
		}
		data, err := g.BudgetReport(lh, trip, revenues, expenses)
		checkPDF(t, data, err)
	})

	t.Run("schedule letter", func(t *testing.T) {
		data, err := g.ScheduleLetter(lh, trip, []int64{21000, 21000, 20000})
		checkPDF(t, data, err)

		data, err = g.ScheduleLetter(lh, trip, nil)
		checkPDF(t, data, err)
	})
}

// writePNG writes a small valid PNG for letterhead image tests.
func writePNG(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLogoAndSignatures(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	writePNG(t, logo)

	g := NewGenerator()
	lh := Letterhead{
		Name:          "Collège Jean Moulin",
		LogoPath:      logo,
		SignatureCity: "Lyon",
		// Same file as the logo, must be skipped by the dedupe.
		AuthorizerImagePath: logo,
	}
	data, err := g.EnrolledList(lh, testTrip(), nil)
	checkPDF(t, data, err)
}

func TestUnreadableImagesSkipped(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	sig := filepath.Join(dir, "signature.png")
	if err := os.WriteFile(logo, []byte("not a png at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sig, bytes.Repeat([]byte{0x89, 0x50, 0x4e, 0x47}, 64), 0o644); err != nil {
		t.Fatal(err)
	}

	g := NewGenerator()
	lh := Letterhead{
		Name:                "Collège Jean Moulin",
		SignatureCity:       "Lyon",
		LogoPath:            logo,
		AuthorizerImagePath: sig,
	}
	// The documents must still come out, images left off.
	data, err := g.EnrolledList(lh, testTrip(), nil)
	checkPDF(t, data, err)
	data, err = g.RefundCertificate(lh, testTrip(), testAccount(models.StatusToRefund, 35000).Participant, 35000)
	checkPDF(t, data, err)
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	c := filepath.Join(dir, "c.png")
	os.WriteFile(a, []byte("image-bytes"), 0o644)
	os.WriteFile(b, []byte("image-bytes"), 0o644)
	os.WriteFile(c, []byte("other-bytes"), 0o644)

	if !sameContent(a, b) {
		t.Error("identical files reported as different")
	}
	if sameContent(a, c) {
		t.Error("different files reported as identical")
	}
	if sameContent(a, "") || sameContent("", b) {
		t.Error("empty path must never match")
	}
	if sameContent(a, filepath.Join(dir, "missing.png")) {
		t.Error("missing file must never match")
	}
}

func TestFoldBeyondCP1252(t *testing.T) {
	// Latin text stays untouched, cp1252 carries the accents.
	if got := foldBeyondCP1252("Élève n°12, déjà payé"); got != "Élève n°12, déjà payé" {
		t.Errorf("latin text altered: %q", got)
	}
	// Beyond Latin, accents fold and the rest degrades to '?'.
	if got := foldBeyondCP1252("Zoë 旅行"); got != "Zoe ??" {
		t.Errorf("got %q", got)
	}
}

func TestGeneratorFontProbing(t *testing.T) {
	if g := NewGenerator(t.TempDir()); g.fontFamily != "" {
		t.Errorf("empty dir must fall back to the built-in font, got %q", g.fontFamily)
	}

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "NotoSans-Regular.ttf"), []byte("stub"), 0o644)
	g := NewGenerator(t.TempDir(), dir)
	if g.fontFamily != "NotoSans" {
		t.Errorf("expected NotoSans, got %q", g.fontFamily)
	}
	if g.boldFile != "" {
		t.Errorf("no bold file present, got %q", g.boldFile)
	}
}
