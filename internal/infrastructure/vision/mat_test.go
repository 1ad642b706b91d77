//go:build gocv
// +build gocv

package vision

import (
	"image"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"lens-finder/internal/domain/entity"
)

func toMat(t *testing.T, frame *image.RGBA) gocv.Mat {
	t.Helper()
	mat, err := gocv.ImageToMatRGB(frame)
	require.NoError(t, err)
	return mat
}

func analyzeMat(t *testing.T, frame *image.RGBA) (*entity.ScanResult, gocv.Mat) {
	t.Helper()
	mat := toMat(t, frame)
	a := NewMatAnalyzer(DefaultConfig())
	t.Cleanup(func() { a.Close() })
	return a.Analyze(&mat), mat
}

func sortedBoxes(regions []entity.Region) []image.Rectangle {
	boxes := make([]image.Rectangle, 0, len(regions))
	for _, r := range regions {
		boxes = append(boxes, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height))
	}
	sort.Slice(boxes, func(i, j int) bool {
		if boxes[i].Min.Y != boxes[j].Min.Y {
			return boxes[i].Min.Y < boxes[j].Min.Y
		}
		return boxes[i].Min.X < boxes[j].Min.X
	})
	return boxes
}

func TestMatAnalyzer_BlankFrame(t *testing.T) {
	res, mat := analyzeMat(t, newFrame(640, 480))
	defer mat.Close()

	require.Equal(t, 0, res.Count)
	require.Equal(t, 0, res.Rejected)
	require.Equal(t, 640, mat.Cols())
	require.Equal(t, 480, mat.Rows())

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)
	require.Zero(t, gocv.CountNonZero(gray))
}

func TestMatAnalyzer_CentralGlint(t *testing.T) {
	frame := newFrame(640, 480)
	drawDisk(frame, 320, 240, 8)

	res, mat := analyzeMat(t, frame)
	defer mat.Close()

	require.Equal(t, 1, res.Count)
	c := res.Candidates[0]
	require.Equal(t, image.Rect(318, 238, 322, 242), image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height))
	require.InDelta(t, 7, c.Area, 1e-9)
	require.GreaterOrEqual(t, c.Circularity, 0.75)

	// BGR: рамка красная.
	px := mat.GetVecbAt(c.Y, c.X)
	require.Equal(t, []uint8{0, 0, 255}, []uint8{px[0], px[1], px[2]})
}

func TestMatAnalyzer_LargeBrightSquareIsRejected(t *testing.T) {
	frame := newFrame(640, 480)
	fillRect(frame, image.Rect(220, 140, 420, 340))

	res, mat := analyzeMat(t, frame)
	defer mat.Close()

	require.Equal(t, 0, res.Count)
	require.Equal(t, 1, res.Rejected)
}

func TestMatAnalyzer_GlintNearCornerIsRejected(t *testing.T) {
	frame := newFrame(640, 480)
	drawDisk(frame, 5+4, 5+4, 8)

	res, mat := analyzeMat(t, frame)
	defer mat.Close()

	require.Equal(t, 0, res.Count)
	require.Equal(t, 1, res.Rejected)
}

func TestMatAnalyzer_AgreesWithAnalyzer(t *testing.T) {
	frame := newFrame(640, 480)
	drawDisk(frame, 320, 240, 13)
	drawDisk(frame, 150, 150, 8)
	drawDisk(frame, 470, 380, 10)
	drawDisk(frame, 500, 12, 13)
	fillRect(frame, image.Rect(400, 300, 408, 330))

	res, mat := analyzeMat(t, cloneFrame(frame))
	defer mat.Close()

	want := NewAnalyzer(DefaultConfig()).Analyze(frame)

	require.Equal(t, want.Count, res.Count)
	require.Equal(t, want.Rejected, res.Rejected)
	require.Equal(t, sortedBoxes(want.Candidates), sortedBoxes(res.Candidates))
}

func TestMatAnalyzer_DrawCount(t *testing.T) {
	mat := toMat(t, newFrame(640, 480))
	defer mat.Close()

	a := NewMatAnalyzer(DefaultConfig())
	defer a.Close()
	a.DrawCount(&mat, 3)

	// Надпись зелёная и начинается правее x = 10 над базовой линией y = 30.
	found := false
	for y := 10; y <= 30 && !found; y++ {
		for x := 10; x < 200; x++ {
			px := mat.GetVecbAt(y, x)
			if px[1] > 0 {
				require.Zero(t, px[2])
				found = true
				break
			}
		}
	}
	require.True(t, found)
}
