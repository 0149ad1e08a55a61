package render

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"aprsdecode/aprs"
	"aprsdecode/feed"
)

type jsonRecord struct {
	Received string        `json:"received"`
	Raw      string        `json:"raw"`
	Error    string        `json:"error,omitempty"`
	From     string        `json:"from,omitempty"`
	To       string        `json:"to,omitempty"`
	Via      []string      `json:"via,omitempty"`
	Kind     string        `json:"kind,omitempty"`
	Device   string        `json:"device,omitempty"`
	Position *jsonPosition `json:"position,omitempty"`
	Object   *jsonObject   `json:"object,omitempty"`
	Status   *jsonStatus   `json:"status,omitempty"`
}

type jsonPosition struct {
	Timestamp   string  `json:"timestamp,omitempty"`
	Latitude    float32 `json:"latitude"`
	Longitude   float32 `json:"longitude"`
	SymbolTable string  `json:"symbol_table"`
	Symbol      string  `json:"symbol"`
	Comment     string  `json:"comment"`
}

type jsonObject struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	jsonPosition
}

type jsonStatus struct {
	Report string `json:"report"`
}

// JSON writes one JSON object per line.
type JSON struct {
	enc *json.Encoder
}

func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSON{enc: enc}
}

func (j *JSON) Render(res feed.Result) error {
	rec := jsonRecord{
		Received: res.Received.UTC().Format(time.RFC3339Nano),
		Raw:      res.Line,
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
		return j.enc.Encode(rec)
	}

	m := res.Message
	rec.From = m.From.String()
	rec.To = m.To.String()
	for _, v := range m.Via {
		rec.Via = append(rec.Via, v.String())
	}
	rec.Kind = m.Data.Kind().String()
	if res.Packet != nil {
		rec.Device = res.Packet.Device
	}

	switch data := m.Data.(type) {
	case aprs.PositionReport:
		rec.Position = &jsonPosition{
			Latitude:    data.Latitude,
			Longitude:   data.Longitude,
			SymbolTable: string(data.SymbolTable),
			Symbol:      string(data.Symbol),
			Comment:     data.Comment,
		}
		if data.Timestamp != nil {
			rec.Position.Timestamp = data.Timestamp.String()
		}

	case aprs.ObjectReport:
		rec.Object = &jsonObject{
			Name:   strings.TrimRight(data.Name, " "),
			Status: data.Status.String(),
			jsonPosition: jsonPosition{
				Timestamp:   data.Timestamp.String(),
				Latitude:    data.Latitude,
				Longitude:   data.Longitude,
				SymbolTable: string(data.SymbolTable),
				Symbol:      string(data.Symbol),
				Comment:     data.Comment,
			},
		}

	case aprs.StatusReport:
		rec.Status = &jsonStatus{Report: data.Report}
	}

	return j.enc.Encode(rec)
}
