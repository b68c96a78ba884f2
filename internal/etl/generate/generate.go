// Package generate produces synthetic CSV extracts with the exact column
// layout the loader expects. It exists for local runs and integration tests
// that should not depend on the real dataset; identifiers are dense 1..N
// ranges and every visit references hospitals, physicians, payers, and
// patients that were actually generated.
package generate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/config"
)

// Options controls how many rows of each extract are generated and where
// the files land. A non-zero Seed makes the output reproducible.
type Options struct {
	Dir        string
	Seed       uint64
	Hospitals  int
	Payers     int
	Physicians int
	Patients   int
	Visits     int
	Reviews    int
}

// DefaultOptions returns generation counts sized like a small demo dataset.
func DefaultOptions(dir string) Options {
	return Options{
		Dir:        dir,
		Hospitals:  10,
		Payers:     5,
		Physicians: 30,
		Patients:   100,
		Visits:     500,
		Reviews:    200,
	}
}

// Validate rejects option sets that cannot produce a loadable dataset.
func (o Options) Validate() error {
	if o.Dir == "" {
		return fmt.Errorf("output directory is required")
	}
	counts := map[string]int{
		"hospitals":  o.Hospitals,
		"payers":     o.Payers,
		"physicians": o.Physicians,
		"patients":   o.Patients,
		"visits":     o.Visits,
		"reviews":    o.Reviews,
	}
	for name, n := range counts {
		if n < 1 {
			return fmt.Errorf("%s count must be at least 1, got %d", name, n)
		}
	}
	return nil
}

var (
	payerNames = []string{"Medicaid", "UnitedHealthcare", "Aetna", "Cigna", "Blue Cross"}

	medicalSchools = []string{
		"Johns Hopkins University",
		"Stanford University School of Medicine",
		"Harvard Medical School",
		"Mayo Clinic Alix School of Medicine",
		"Duke University School of Medicine",
		"University of Washington School of Medicine",
		"Emory University School of Medicine",
		"Baylor College of Medicine",
	}

	admissionTypes = []string{"Elective", "Emergency", "Urgent"}
	testResults    = []string{"Normal", "Abnormal", "Inconclusive"}
	bloodTypes     = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

	chiefComplaints = []string{
		"Chest pain", "Shortness of breath", "Headache", "Abdominal pain",
		"Fever", "Back pain", "Fatigue", "Dizziness",
	}
	diagnoses = []string{
		"Hypertension", "Diabetes", "Asthma", "Arthritis", "Obesity", "Cancer",
	}
)

// Generator writes the six extracts. Shared identity data (names keyed by
// id) is kept so that reviews denormalize the same names the graph ends up
// holding.
type Generator struct {
	opts  Options
	faker *gofakeit.Faker
}

// New creates a Generator for the given options.
func New(opts Options) *Generator {
	return &Generator{
		opts:  opts,
		faker: gofakeit.New(opts.Seed),
	}
}

type visitRow struct {
	hospitalID  int
	physicianID int
	patientID   int
}

// Run generates all six extracts and returns their paths, ready to drop
// into the loader configuration.
func (g *Generator) Run() (config.CSVConfig, error) {
	var paths config.CSVConfig

	if err := g.opts.Validate(); err != nil {
		return paths, err
	}
	if err := os.MkdirAll(g.opts.Dir, 0o755); err != nil {
		return paths, fmt.Errorf("failed to create output directory: %w", err)
	}

	hospitalNames := make([]string, g.opts.Hospitals)
	for i := range hospitalNames {
		hospitalNames[i] = g.faker.Company()
	}
	physicianNames := make([]string, g.opts.Physicians)
	for i := range physicianNames {
		physicianNames[i] = g.faker.Name()
	}
	patientNames := make([]string, g.opts.Patients)
	for i := range patientNames {
		patientNames[i] = g.faker.Name()
	}

	var err error
	if paths.Hospitals, err = g.writeHospitals(hospitalNames); err != nil {
		return paths, err
	}
	if paths.Payers, err = g.writePayers(); err != nil {
		return paths, err
	}
	if paths.Physicians, err = g.writePhysicians(physicianNames); err != nil {
		return paths, err
	}
	if paths.Patients, err = g.writePatients(patientNames); err != nil {
		return paths, err
	}

	visits, visitsPath, err := g.writeVisits()
	if err != nil {
		return paths, err
	}
	paths.Visits = visitsPath

	if paths.Reviews, err = g.writeReviews(visits, hospitalNames, physicianNames, patientNames); err != nil {
		return paths, err
	}

	return paths, nil
}

func (g *Generator) writeHospitals(names []string) (string, error) {
	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{strconv.Itoa(i + 1), name, g.faker.StateAbr()}
	}
	return g.writeCSV("hospitals.csv", []string{"hospital_id", "hospital_name", "hospital_state"}, rows)
}

func (g *Generator) writePayers() (string, error) {
	rows := make([][]string, g.opts.Payers)
	for i := range rows {
		name := g.faker.Company() + " Insurance"
		if i < len(payerNames) {
			name = payerNames[i]
		}
		rows[i] = []string{strconv.Itoa(i + 1), name}
	}
	return g.writeCSV("payers.csv", []string{"payer_id", "payer_name"}, rows)
}

func (g *Generator) writePhysicians(names []string) (string, error) {
	rows := make([][]string, len(names))
	for i, name := range names {
		dob := g.faker.DateRange(
			time.Date(1951, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(1989, 12, 31, 0, 0, 0, 0, time.UTC))
		gradYear := dob.AddDate(26+g.faker.Number(0, 8), 0, 0)
		rows[i] = []string{
			strconv.Itoa(i + 1),
			name,
			dob.Format("2006-01-02"),
			gradYear.Format("2006-01-02"),
			g.faker.RandomString(medicalSchools),
			strconv.FormatFloat(g.faker.Price(150000, 500000), 'f', 2, 64),
		}
	}
	return g.writeCSV("physicians.csv",
		[]string{"physician_id", "physician_name", "physician_dob", "physician_grad_year", "medical_school", "salary"},
		rows)
}

func (g *Generator) writePatients(names []string) (string, error) {
	rows := make([][]string, len(names))
	for i, name := range names {
		dob := g.faker.DateRange(
			time.Date(1935, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))
		rows[i] = []string{
			strconv.Itoa(i + 1),
			name,
			g.faker.RandomString([]string{"Male", "Female"}),
			dob.Format("2006-01-02"),
			g.faker.RandomString(bloodTypes),
		}
	}
	return g.writeCSV("patients.csv",
		[]string{"patient_id", "patient_name", "patient_sex", "patient_dob", "patient_blood_type"},
		rows)
}

func (g *Generator) writeVisits() ([]visitRow, string, error) {
	visits := make([]visitRow, g.opts.Visits)
	rows := make([][]string, g.opts.Visits)
	for i := range rows {
		visit := visitRow{
			hospitalID:  g.faker.Number(1, g.opts.Hospitals),
			physicianID: g.faker.Number(1, g.opts.Physicians),
			patientID:   g.faker.Number(1, g.opts.Patients),
		}
		visits[i] = visit

		admitted := g.faker.DateRange(
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))

		// Roughly one visit in ten is still open and has no discharge
		// date yet; the discharge date column stays an empty string.
		status := "DISCHARGED"
		discharge := admitted.AddDate(0, 0, g.faker.Number(1, 30)).Format("2006-01-02")
		if g.faker.Number(1, 10) == 1 {
			status = "OPEN"
			discharge = ""
		}

		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(g.faker.Number(100, 999)),
			g.faker.RandomString(admissionTypes),
			admitted.Format("2006-01-02"),
			g.faker.RandomString(testResults),
			status,
			g.faker.RandomString(chiefComplaints),
			g.faker.Sentence(8),
			g.faker.RandomString(diagnoses),
			discharge,
			strconv.Itoa(visit.hospitalID),
			strconv.Itoa(visit.physicianID),
			strconv.Itoa(g.faker.Number(1, g.opts.Payers)),
			strconv.Itoa(visit.patientID),
			strconv.FormatFloat(g.faker.Price(1000, 50000), 'f', 2, 64),
		}
	}

	path, err := g.writeCSV("visits.csv", []string{
		"visit_id", "room_number", "admission_type", "date_of_admission",
		"test_results", "visit_status", "chief_complaint", "treatment_description",
		"primary_diagnosis", "discharge_date", "hospital_id", "physician_id",
		"payer_id", "patient_id", "billing_amount",
	}, rows)
	return visits, path, err
}

func (g *Generator) writeReviews(visits []visitRow, hospitalNames, physicianNames, patientNames []string) (string, error) {
	rows := make([][]string, g.opts.Reviews)
	for i := range rows {
		visitID := g.faker.Number(1, len(visits))
		visit := visits[visitID-1]
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(visitID),
			g.faker.Sentence(12),
			patientNames[visit.patientID-1],
			physicianNames[visit.physicianID-1],
			hospitalNames[visit.hospitalID-1],
		}
	}
	return g.writeCSV("reviews.csv",
		[]string{"review_id", "visit_id", "review", "patient_name", "physician_name", "hospital_name"},
		rows)
}

func (g *Generator) writeCSV(name string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(g.opts.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return path, nil
}
