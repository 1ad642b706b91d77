package rest

import "lens-finder/internal/domain/entity"

// CandidateDTO один принятый блик в ответе
type CandidateDTO struct {
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Area        float64 `json:"area"`
	Perimeter   float64 `json:"perimeter"`
	Circularity float64 `json:"circularity"`
}

// ScanResponse тело ответа POST /api/scan
type ScanResponse struct {
	ID          string         `json:"id"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Count       int            `json:"count"`
	Rejected    int            `json:"rejected"`
	Candidates  []CandidateDTO `json:"candidates"`
	Description string         `json:"description,omitempty"`
}

func newScanResponse(id string, r *entity.ScanResult) ScanResponse {
	resp := ScanResponse{
		ID:         id,
		Width:      r.ImageWidth,
		Height:     r.ImageHeight,
		Count:      r.Count,
		Rejected:   r.Rejected,
		Candidates: make([]CandidateDTO, 0, len(r.Candidates)),
	}
	for _, c := range r.Candidates {
		resp.Candidates = append(resp.Candidates, CandidateDTO{
			X:           c.X,
			Y:           c.Y,
			Width:       c.Width,
			Height:      c.Height,
			Area:        c.Area,
			Perimeter:   c.Perimeter,
			Circularity: c.Circularity,
		})
	}
	return resp
}
