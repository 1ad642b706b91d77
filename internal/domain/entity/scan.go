package entity

// ScanResult хранит итог анализа одного кадра.
type ScanResult struct {
	ImageWidth    int      // ширина кадра
	ImageHeight   int      // высота кадра
	Candidates    []Region // области, похожие на блик объектива
	Count         int      // число найденных кандидатов
	Rejected      int      // число отброшенных областей
	HasCandidates bool     // флаг наличия кандидатов
}

// NewScanResult собирает результат из списка принятых областей.
func NewScanResult(width, height int, candidates []Region, rejected int) *ScanResult {
	return &ScanResult{
		ImageWidth:    width,
		ImageHeight:   height,
		Candidates:    candidates,
		Count:         len(candidates),
		Rejected:      rejected,
		HasCandidates: len(candidates) > 0,
	}
}

// ScanDescription хранит текстовое описание результата для пользователя.
type ScanDescription struct {
	Text string
}
