package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/renato0307/fieldscan/internal/domain"
)

func exportSession() domain.Session {
	end := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
	return domain.Session{
		ConfigName: "5 over 1",
		EndTime:    &end,
		ID:         "s-1",
		ScanResults: []domain.ScanResult{
			{
				AssetTag:      "222222",
				ModelID:       "55BDL3050Q/00",
				PositionID:    "ctv-2",
				PositionLabel: "CTV 2",
				SerialNumber:  "AU0A2222222222",
				Timestamp:     "2024-05-01T10:15:00.000Z",
			},
			{
				AssetTag:      "111111",
				ModelID:       "43BDL4550D/00",
				Notes:         `bracket "left"`,
				PositionID:    "ctv-1",
				PositionLabel: "CTV 1",
				SerialNumber:  "AU0A1111111111",
				Timestamp:     "2024-05-01T09:05:30.000Z",
			},
		},
		SiteCode:  "C1234",
		SiteName:  "High Street",
		StartTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRenderCSVDefault(t *testing.T) {
	out := RenderCSV(exportSession(), DefaultConfig())

	want := strings.Join([]string{
		`"Site_Code","Position","Model_ID","Serial_Number","Asset_Tag","Timestamp"`,
		`"C1234","CTV 1","43BDL4550D/00","AU0A1111111111","111111","2024-05-01T09:05:30Z"`,
		`"C1234","CTV 2","55BDL3050Q/00","AU0A2222222222","222222","2024-05-01T10:15:00Z"`,
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderCSVRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for _, col := range domain.Columns() {
		cfg.Columns[col] = true
	}
	session := exportSession()
	session.ScanResults[0].Notes = "comma, \"quote\" and\nnewline"

	out := RenderCSV(session, cfg)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	header, rows := Table(session, cfg)
	require.Len(t, records, len(rows)+1)
	assert.Equal(t, header, records[0])
	for i, row := range rows {
		assert.Equal(t, row, records[i+1])
	}
}

func TestRenderCSVHeaderOnly(t *testing.T) {
	session := exportSession()
	session.ScanResults = nil

	out := RenderCSV(session, DefaultConfig())
	assert.Equal(t, `"Site_Code","Position","Model_ID","Serial_Number","Asset_Tag","Timestamp"`, out)
}

func TestUnparseableTimestampPassesThrough(t *testing.T) {
	session := exportSession()
	session.ScanResults[0].Timestamp = "not-a-date"

	out := RenderCSV(session, DefaultConfig())
	assert.Contains(t, out, `"not-a-date"`)
}

func TestSortResults(t *testing.T) {
	results := []domain.ScanResult{
		{PositionLabel: "B", ModelID: "M2", Timestamp: "garbage"},
		{PositionLabel: "A", ModelID: "M3", Timestamp: "2024-05-01T10:00:00Z"},
		{PositionLabel: "C", ModelID: "M1", Timestamp: "2024-05-01T09:00:00Z"},
		{PositionLabel: "A", ModelID: "M1", Timestamp: "also garbage"},
	}

	labels := func(rs []domain.ScanResult) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.PositionLabel + r.ModelID
		}
		return out
	}

	tests := []struct {
		key  domain.SortKey
		want []string
	}{
		{key: domain.SortByPosition, want: []string{"AM3", "AM1", "BM2", "CM1"}},
		{key: domain.SortByModel, want: []string{"CM1", "AM1", "BM2", "AM3"}},
		{key: domain.SortByTime, want: []string{"CM1", "AM3", "BM2", "AM1"}},
		{key: "", want: []string{"BM2", "AM3", "CM1", "AM1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, labels(SortResults(results, tt.key)))
		})
	}
	assert.Equal(t, "B", results[0].PositionLabel, "input is not reordered")
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 2, 7, 4, 9, 120_000_000, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: domain.DateFormatISO, want: "2024-03-02T07:04:09Z"},
		{pattern: domain.DateFormatStandard, want: "2024-03-02 07:04:09"},
		{pattern: domain.DateFormatUK, want: "02/03/2024 07:04"},
		{pattern: domain.DateFormatUS, want: "03/02/2024 07:04"},
		{pattern: domain.DateFormatDateOnly, want: "2024-03-02"},
		{pattern: "HH:mm:ss.SSS", want: "07:04:09.120"},
		{pattern: "d MMM yy", want: "2 Mar 24"},
		{pattern: "'at' h a", want: "at 7 AM"},
		{pattern: "'it''s' yyyy", want: "it's 2024"},
		{pattern: "PPP", want: "March 2nd, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(ts, tt.pattern))
		})
	}
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 31: "31st"} {
		assert.Equal(t, want, ordinal(n))
	}
}

func TestRenderJSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns[domain.ColumnNotes] = true
	cfg.Columns[domain.ColumnSerialNumber] = false

	out, err := RenderJSON(exportSession(), cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"session_info\": {"))

	var doc struct {
		SessionInfo struct {
			ConfigName     string  `json:"config_name"`
			EndTime        *string `json:"end_time"`
			SiteCode       string  `json:"site_code"`
			TotalPositions int     `json:"total_positions"`
		} `json:"session_info"`
		ScanResults []map[string]string `json:"scan_results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "C1234", doc.SessionInfo.SiteCode)
	assert.Equal(t, 2, doc.SessionInfo.TotalPositions)
	require.NotNil(t, doc.SessionInfo.EndTime)
	require.Len(t, doc.ScanResults, 2)

	first := doc.ScanResults[0]
	assert.Equal(t, "CTV 1", first["position"])
	assert.Equal(t, `bracket "left"`, first["notes"])
	assert.NotContains(t, first, "serial_number")

	second := doc.ScanResults[1]
	assert.NotContains(t, second, "notes", "empty notes are omitted")
	assert.NotContains(t, second, "photo_url")
}

func TestRenderJSONKeepsColumnOrder(t *testing.T) {
	out, err := RenderJSON(exportSession(), DefaultConfig())
	require.NoError(t, err)

	results := out[strings.Index(out, `"scan_results"`):]
	site := strings.Index(results, `"site_code"`)
	position := strings.Index(results, `"position"`)
	timestamp := strings.Index(results, `"timestamp"`)
	require.GreaterOrEqual(t, site, 0)
	assert.Less(t, site, position)
	assert.Less(t, position, timestamp)
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(exportSession(), DefaultConfig())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Model_ID", rows[0][2])
	assert.Equal(t, "43BDL4550D/00", rows[1][2])
}

func TestRenderXLSXFromTemplate(t *testing.T) {
	base := excelize.NewFile()
	require.NoError(t, base.SetCellValue("Sheet1", "A1", "Serial"))
	require.NoError(t, base.SetCellValue("Sheet1", "C1", "Model"))
	buf, err := base.WriteToBuffer()
	require.NoError(t, err)

	data, err := RenderXLSXFromTemplate(exportSession(), DefaultConfig(), buf,
		map[string]string{"serial_number": "A", "model_id": "c"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	serial, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "AU0A1111111111", serial)

	model, err := f.GetCellValue("Sheet1", "C3")
	require.NoError(t, err)
	assert.Equal(t, "55BDL3050Q/00", model)

	header, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Serial", header)
}

func TestFileNameAndDraft(t *testing.T) {
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "C1234_2024-05-03.csv", FileName("C1234", FormatCSV, now))
	assert.Equal(t, "C1234_2024-05-03.xlsx", FileName("C1234", FormatXLSX, now))

	draft := NewEmailDraft(exportSession(), DefaultConfig(), now)
	assert.Equal(t, "[C1234] Installation Report - May 3rd, 2024", draft.Subject)
	assert.Contains(t, draft.Body, "Installation report for High Street (C1234) completed on May 1st, 2024.")
	assert.Contains(t, draft.Body, "Total positions scanned: 2")
	assert.Contains(t, draft.Body, "--- CSV Data ---\n\"Site_Code\"")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}
