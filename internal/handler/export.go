package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "number_plate", "entry_interchange", "exit_interchange",
	"entry_time", "exit_time", "regime", "distance_km",
	"base_rate", "distance_cost", "sub_total", "discount", "total",
	"fare_error",
}

// GetExport handles GET /toll/export.
// It returns every closed trip with its fare. Use ?format=csv to receive CSV;
// default is JSON.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	rows, err := s.export.Export(ctx)
	if err != nil {
		return nil, err
	}

	if req.Params.Format != nil && *req.Params.Format == gen.Csv {
		return s.buildCSVResponse(rows), nil
	}
	return buildJSONResponse(rows), nil
}

func buildJSONResponse(rows []domain.ExportRow) gen.GetExport200JSONResponse {
	out := make(gen.GetExport200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return out
}

// buildCSVResponse encodes rows as CSV. Times are written in the server's
// tariff zone so they line up with the pricing decision.
func (s *Server) buildCSVResponse(rows []domain.ExportRow) gen.GetExport200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(s.domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.GetExport200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// domainRowToGenRow maps a domain.ExportRow to the generated type.
// Fare fields are omitted when the fare could not be computed.
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	tripID, _ := uuid.Parse(r.TripID)
	row := gen.ExportRow{
		TripId:           tripID,
		NumberPlate:      r.NumberPlate,
		EntryInterchange: r.EntryInterchange,
		ExitInterchange:  r.ExitInterchange,
		EntryTime:        r.EntryTime,
		ExitTime:         r.ExitTime,
	}
	if r.Fare != nil {
		regime := r.Fare.Regime()
		total := r.Fare.Total
		discount := r.Fare.Discount
		row.Regime = &regime
		row.Total = &total
		row.Discount = &discount
	}
	if r.FareError != "" {
		row.FareError = &r.FareError
	}
	return row
}

func (s *Server) domainRowToCSVRecord(r domain.ExportRow) []string {
	rec := []string{
		r.TripID,
		r.NumberPlate,
		r.EntryInterchange,
		r.ExitInterchange,
		r.EntryTime.In(s.loc).Format(time.RFC3339),
		r.ExitTime.In(s.loc).Format(time.RFC3339),
	}
	if r.Fare == nil {
		return append(rec, "", "", "", "", "", "", "", r.FareError)
	}
	f := r.Fare
	return append(rec,
		f.Regime(),
		strconv.Itoa(f.Distance),
		formatAmount(f.BaseRate),
		formatAmount(f.DistanceCost),
		formatAmount(f.SubTotal),
		formatAmount(f.Discount),
		formatAmount(f.Total),
		"",
	)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
