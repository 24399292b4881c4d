package scanner

import (
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
)

// timestampLayout matches the millisecond UTC timestamps stored on results
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Capture is the editable record of one position's scan, from the first
// reading until it is saved
type Capture struct {
	Errors map[string]string
	Fields Fields
	Method domain.CaptureMethod
	Photo  *Photo
}

// NewCapture returns an empty capture
func NewCapture() *Capture {
	return &Capture{
		Errors: map[string]string{},
		Fields: idleFields(),
		Method: domain.CaptureOCR,
	}
}

// FromResult loads a previously saved result so it can be reviewed or
// edited. Values are reformatted and the stored photo is kept.
func FromResult(r domain.ScanResult) *Capture {
	c := NewCapture()
	c.Fields = capturedFields(r.ModelID, r.SerialNumber, r.AssetTag)
	if r.CaptureMethod != "" {
		c.Method = r.CaptureMethod
	}
	if r.PhotoURL != "" {
		p := &Photo{Method: r.PhotoMethod, URL: r.PhotoURL}
		if r.PhotoCapturedAt != nil {
			p.CapturedAt = *r.PhotoCapturedAt
		}
		c.Photo = p
	}
	c.revalidate()
	return c
}

func capturedFields(model, serial, asset string) Fields {
	return Fields{
		AssetTag:     FieldState{Confidence: 100, Status: FieldCaptured, Value: domain.FormatAssetTag(asset)},
		ModelID:      FieldState{Confidence: 100, Status: FieldCaptured, Value: domain.FormatModelID(model)},
		SerialNumber: FieldState{Confidence: 100, Status: FieldCaptured, Value: domain.FormatSerialNumber(serial)},
	}
}

// ApplySnapshot copies simulator output into the capture
func (c *Capture) ApplySnapshot(s Snapshot) {
	c.Fields = s.Fields
	c.Method = domain.CaptureOCR
	if s.Photo != nil {
		photo := *s.Photo
		c.Photo = &photo
	}
	if c.Fields.AllCaptured() {
		c.Fields = capturedFieldsKeepingConfidence(c.Fields)
	}
	c.revalidate()
}

func capturedFieldsKeepingConfidence(f Fields) Fields {
	out := capturedFields(f.ModelID.Value, f.SerialNumber.Value, f.AssetTag.Value)
	out.ModelID.Confidence = f.ModelID.Confidence
	out.SerialNumber.Confidence = f.SerialNumber.Confidence
	out.AssetTag.Confidence = f.AssetTag.Confidence
	return out
}

// ApplyManual records typed values. Any previous photo no longer documents
// the entered data and is dropped.
func (c *Capture) ApplyManual(modelID, serialNumber, assetTag string) {
	c.Fields = capturedFields(modelID, serialNumber, assetTag)
	c.Method = domain.CaptureManual
	c.Photo = nil
	c.revalidate()
}

// TakePhoto attaches a simulated photo taken now
func (c *Capture) TakePhoto(method domain.PhotoMethod, now time.Time) Photo {
	if method == "" {
		method = domain.PhotoManual
	}
	photo := Photo{
		CapturedAt: now,
		Method:     method,
		URL:        PhotoURL("New Photo", now),
	}
	c.Photo = &photo
	return photo
}

// Edit changes one captured value; field is one of the domain.Field names
func (c *Capture) Edit(field, value string) error {
	switch field {
	case domain.FieldModelID:
		c.Fields.ModelID = FieldState{Confidence: 100, Status: FieldCaptured, Value: domain.FormatModelID(value)}
	case domain.FieldSerialNumber:
		c.Fields.SerialNumber = FieldState{Confidence: 100, Status: FieldCaptured, Value: domain.FormatSerialNumber(value)}
	case domain.FieldAssetTag:
		c.Fields.AssetTag = FieldState{Confidence: 100, Status: FieldCaptured, Value: domain.FormatAssetTag(value)}
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	c.revalidate()
	return nil
}

// Values returns the current values keyed by field name
func (c *Capture) Values() map[string]string {
	return map[string]string{
		domain.FieldAssetTag:     c.Fields.AssetTag.Value,
		domain.FieldModelID:      c.Fields.ModelID.Value,
		domain.FieldSerialNumber: c.Fields.SerialNumber.Value,
	}
}

// revalidate checks the values once every field is captured
func (c *Capture) revalidate() {
	if !c.Fields.AllCaptured() {
		c.Errors = map[string]string{}
		return
	}
	c.Errors = domain.ValidateAllFields(c.Values(), domain.EquipmentValidators).Errors
}

// ReadyToSave reports whether all fields are captured and valid and a
// photo is attached
func (c *Capture) ReadyToSave() bool {
	return c.Fields.AllCaptured() &&
		len(c.Errors) == 0 &&
		c.Photo != nil &&
		strings.TrimSpace(c.Photo.URL) != ""
}

// CheckReady returns domain.ErrIncompleteCapture when the capture cannot be
// saved
func (c *Capture) CheckReady() error {
	if !c.ReadyToSave() {
		return fmt.Errorf("%w: %s", domain.ErrIncompleteCapture, domain.IncompleteCaptureMessage)
	}
	return nil
}

// ToScanResult builds the result saved for the position
func (c *Capture) ToScanResult(pos domain.Position, notes string, now time.Time, online bool) (domain.ScanResult, error) {
	if err := c.CheckReady(); err != nil {
		return domain.ScanResult{}, err
	}

	label := pos.Label
	if label == "" {
		label = "Position " + pos.ID
	}
	capturedAt := c.Photo.CapturedAt

	return domain.ScanResult{
		AssetTag:        c.Fields.AssetTag.Value,
		CaptureMethod:   c.Method,
		Confidence:      100,
		ModelID:         c.Fields.ModelID.Value,
		Notes:           strings.TrimSpace(notes),
		PhotoCapturedAt: &capturedAt,
		PhotoMethod:     c.Photo.Method,
		PhotoURL:        c.Photo.URL,
		PositionID:      pos.ID,
		PositionLabel:   label,
		SerialNumber:    c.Fields.SerialNumber.Value,
		Synced:          online,
		Timestamp:       now.UTC().Format(timestampLayout),
	}, nil
}
