package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/balancesheet"
	"go.uber.org/zap"
)

// testWallet is a wallet address as typed by a user.
var testWallet = "0xabcd" + strings.Repeat("0", 35) + "1"

// otherAddress is any address that is not the wallet.
var otherAddress = "0x" + strings.Repeat("9", 40)

// testSettings returns settings on temporary folders, with logs discarded.
func testSettings(t *testing.T) *settings {
	t.Helper()
	tmp := t.TempDir()
	return &settings{
		importDir: filepath.Join(tmp, "import"),
		exportDir: filepath.Join(tmp, "export"),
		wrapped:   balancesheet.WrappedNative,
		log:       zap.NewNop(),
	}
}

// writeFile writes content to dir/name and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	return path
}

// nativeExport is a normal transactions export with a deposit of 2 ETH in 2022
// and a payment of 0.5 ETH in 2023.
func nativeExport() string {
	return `"Txhash","DateTime (UTC)","From","To","Value_IN(ETH)","Value_OUT(ETH)","TxnFee(ETH)","Status","Method"
"0x1","2022-01-10 08:00:00","` + otherAddress + `","` + testWallet + `","2","0","0.001","","Transfer"
"0x2","2023-02-11 09:00:00","` + testWallet + `","` + otherAddress + `","0","0.5","0.001","","Transfer"
`
}

// tokenExport is the export of a single token, where the symbol is missing.
func tokenExport() string {
	return "Txhash,DateTime (UTC),From,To,Quantity\n" +
		"0x1,2024-03-01 00:00:00," + otherAddress + "," + testWallet + ",42\n"
}

// readReport decodes the balance sheet at path.
func readReport(t *testing.T, path string) *balancesheet.Report {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open balance sheet: %v", err)
	}
	defer f.Close()
	r, err := balancesheet.DecodeReport(f)
	if err != nil {
		t.Fatalf("Failed to decode balance sheet: %v", err)
	}
	return r
}

// setGlobal overrides a global flag value for the duration of the test.
func setGlobal(t *testing.T, flag **string, value string) {
	t.Helper()
	old := *flag
	*flag = &value
	t.Cleanup(func() { *flag = old })
}
