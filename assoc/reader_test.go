package assoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const assocFixture = ` CHR         SNP   BP   A1      F_A      F_U   A2        CHISQ            P           OR
   1   rs3094315  752566    G   0.2710   0.2568    A       0.4225       0.5157        1.078
   1   rs3131972  752721    A   0.1150   0.1212    G       0.1415       0.7067       0.9426
   1   rs3115860  753405    C       NA       NA    A           NA           NA           NA
   2   rs4040617  779322    G   0.0931   0.0962    A       0.0462       0.8298       0.9645
`

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader(assocFixture))
	if err != nil {
		t.Fatal(err)
	}

	if table.LayoutName != "ASSOC" {
		t.Errorf("Layout %q, expected ASSOC", table.LayoutName)
	}
	if len(table.Header) != 10 {
		t.Errorf("%d header columns, expected 10", len(table.Header))
	}
	if len(table.Records) != 4 {
		t.Fatalf("%d records, expected 4", len(table.Records))
	}

	valid := 0
	for _, rec := range table.Records {
		if rec.HasP() {
			valid++
		}
	}
	if valid != 3 {
		t.Errorf("%d records with a usable p-value, expected 3", valid)
	}

	// The NA row survives as a record (it still has a chromosome and
	// position) but contributes nothing numeric.
	if table.Records[2].SNP != "rs3115860" || table.Records[2].HasP() {
		t.Errorf("NA row mishandled: %+v", table.Records[2])
	}
}

func TestReadTableRegressionFilter(t *testing.T) {
	logistic := `CHR SNP BP A1 TEST NMISS OR STAT P
1 rs1 1000 A ADD 950 1.1 0.5 0.61
1 rs1 1000 A COV1 950 1.0 0.1 0.91
1 rs2 2000 G ADD 950 0.9 -0.4 0.68
`

	table, err := ReadTable(strings.NewReader(logistic))
	if err != nil {
		t.Fatal(err)
	}

	if len(table.Records) != 2 {
		t.Fatalf("%d records after TEST filtering, expected 2", len(table.Records))
	}
	for _, rec := range table.Records {
		if rec.Raw[4] != "ADD" {
			t.Errorf("Non-ADD row leaked through: %v", rec.Raw)
		}
	}
}

func TestReadDelimitedTable(t *testing.T) {
	commaTable := "CHR,SNP,BP,A1,F_A,F_U,A2,CHISQ,P,OR\n" +
		"1,rs1,1000,A,0.2,0.2,G,0.1,0.5,1.0\n" +
		"2,rs2,2000,C,0.2,0.2,G,0.1,0.01,1.1\n"

	table, err := ReadDelimitedTable(strings.NewReader(commaTable), ',')
	if err != nil {
		t.Fatal(err)
	}

	if table.LayoutName != "ASSOC" {
		t.Errorf("Layout %q, expected ASSOC", table.LayoutName)
	}
	if len(table.Records) != 2 || table.Records[1].P != 0.01 {
		t.Errorf("Comma table mis-parsed: %+v", table.Records)
	}
}

func TestReadTableFileSniffsCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.assoc")
	commaTable := "CHR,SNP,BP,A1,F_A,F_U,A2,CHISQ,P,OR\n" +
		"1,rs1,1000,A,0.2,0.2,G,0.1,0.5,1.0\n" +
		"2,rs2,2000,C,0.2,0.2,G,0.1,0.01,1.1\n" +
		"3,rs3,3000,G,0.2,0.2,T,0.1,0.9,0.8\n"
	if err := os.WriteFile(path, []byte(commaTable), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := ReadTableFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Records) != 3 {
		t.Errorf("%d records from a comma-delimited file, expected 3", len(table.Records))
	}
}

func TestReadTableEmpty(t *testing.T) {
	table, err := ReadTable(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if table.Header != nil || len(table.Records) != 0 {
		t.Errorf("Empty input should yield an empty table, got %+v", table)
	}
}
