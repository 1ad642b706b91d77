package vision

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"lens-finder/internal/domain/entity"
)

func TestContour_AreaAndPerimeter(t *testing.T) {
	square := Contour{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	require.InDelta(t, 16.0, square.Area(), 1e-9)
	require.InDelta(t, 16.0, square.Perimeter(), 1e-9)
	require.Equal(t, image.Rect(0, 0, 5, 5), square.BoundingRect())

	// Обход в обратную сторону не меняет площадь.
	reversed := Contour{{0, 4}, {4, 4}, {4, 0}, {0, 0}}
	require.InDelta(t, 16.0, reversed.Area(), 1e-9)

	require.Zero(t, Contour{{3, 3}}.Area())
	require.Zero(t, Contour{{3, 3}}.Perimeter())
	require.Equal(t, image.Rectangle{}, Contour{}.BoundingRect())
}

func TestFindExternalContours(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		count     int
		points    int
		area      float64
		perimeter float64
		rect      image.Rectangle
	}{
		{
			name:  "single pixel",
			rows:  []string{"....", ".#..", "...."},
			count: 1, points: 1, area: 0, perimeter: 0,
			rect: image.Rect(1, 1, 2, 2),
		},
		{
			name:  "solid square",
			rows:  []string{".....", ".###.", ".###.", ".###.", "....."},
			count: 1, points: 8, area: 4, perimeter: 8,
			rect: image.Rect(1, 1, 4, 4),
		},
		{
			name:  "ring keeps only outer border",
			rows:  []string{".......", ".#####.", ".#...#.", ".#...#.", ".#####.", "......."},
			count: 1, points: 14, area: 12, perimeter: 14,
			rect: image.Rect(1, 1, 6, 5),
		},
		{
			name:  "thin line",
			rows:  []string{"......", ".####.", "......"},
			count: 1, points: 6, area: 0, perimeter: 6,
			rect: image.Rect(1, 1, 5, 2),
		},
		{
			name:  "region touching frame border",
			rows:  []string{"###", "###", "###"},
			count: 1, points: 8, area: 4, perimeter: 8,
			rect: image.Rect(0, 0, 3, 3),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			contours := findExternalContours(maskFromRows(tc.rows...))
			require.Len(t, contours, tc.count)

			c := contours[0]
			require.Len(t, c, tc.points)
			require.InDelta(t, tc.area, c.Area(), 1e-9)
			require.InDelta(t, tc.perimeter, c.Perimeter(), 1e-9)
			require.Equal(t, tc.rect, c.BoundingRect())
		})
	}
}

func TestFindExternalContours_SeparateRegions(t *testing.T) {
	contours := findExternalContours(maskFromRows(
		"#..#",
		"....",
		".##.",
	))
	require.Len(t, contours, 3)
	require.Equal(t, image.Pt(0, 0), contours[0][0])
	require.Equal(t, image.Pt(3, 0), contours[1][0])
	require.Equal(t, image.Pt(1, 2), contours[2][0])
}

func TestFindExternalContours_DiagonalIsConnected(t *testing.T) {
	contours := findExternalContours(maskFromRows(
		".....",
		".#...",
		"..#..",
		".....",
	))
	require.Len(t, contours, 1)
	require.InDelta(t, 2*1.4142135623730951, contours[0].Perimeter(), 1e-9)
}

func TestFindExternalContours_EmptyMask(t *testing.T) {
	require.Empty(t, findExternalContours(newBinaryMask(10, 10)))
}

// Площадь и длина совпадают с cv2.contourArea и cv2.arcLength(closed=True)
// для внешних контуров тех же масок.
func TestFindExternalContours_OpenCVGeometry(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		points    Contour
		area      float64
		perimeter float64
	}{
		{
			name:      "diagonal only ring",
			rows:      []string{"....", ".#..", "#.#.", ".#..", "...."},
			points:    Contour{{1, 1}, {2, 2}, {1, 3}, {0, 2}},
			area:      2,
			perimeter: 4 * math.Sqrt2,
		},
		{
			name:      "diagonal line",
			rows:      []string{".....", ".#...", "..#..", "...#.", "....."},
			points:    Contour{{1, 1}, {2, 2}, {3, 3}, {2, 2}},
			area:      0,
			perimeter: 4 * math.Sqrt2,
		},
		{
			name:      "vertical line",
			rows:      []string{"...", ".#.", ".#.", ".#.", "..."},
			points:    Contour{{1, 1}, {1, 2}, {1, 3}, {1, 2}},
			area:      0,
			perimeter: 4,
		},
		{
			name:      "start pixel visited twice",
			rows:      []string{".##", "#.."},
			points:    Contour{{1, 0}, {2, 0}, {1, 0}, {0, 1}},
			area:      0,
			perimeter: 2 + 2*math.Sqrt2,
		},
		{
			name:      "start pixel between two diagonal branches",
			rows:      []string{".#.", "#.#"},
			points:    Contour{{1, 0}, {2, 1}, {1, 0}, {0, 1}},
			area:      0,
			perimeter: 4 * math.Sqrt2,
		},
		{
			name:      "cross through a shared pixel",
			rows:      []string{"#.#", ".#.", "#.#"},
			points:    Contour{{0, 0}, {1, 1}, {2, 0}, {1, 1}, {2, 2}, {1, 1}, {0, 2}, {1, 1}},
			area:      0,
			perimeter: 8 * math.Sqrt2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			contours := findExternalContours(maskFromRows(tc.rows...))
			require.Len(t, contours, 1)
			require.Equal(t, tc.points, contours[0])
			require.InDelta(t, tc.area, contours[0].Area(), 1e-9)
			require.InDelta(t, tc.perimeter, contours[0].Perimeter(), 1e-9)
		})
	}
}

func TestEvaluate_ThinShapesNeverPass(t *testing.T) {
	cfg := DefaultConfig()
	frame := image.Rect(0, 0, 640, 480)

	for _, rows := range [][]string{
		{"......", ".####.", "......"},
		{".....", ".#...", "..#..", "...#.", "....."},
	} {
		c := findExternalContours(maskFromRows(rows...))[0]
		region := cfg.Evaluate(c.Area(), c.Perimeter(), c.BoundingRect().Add(image.Pt(300, 200)), frame)
		require.Equal(t, entity.RejectSize, region.Rejection)
	}

	// Нулевой периметр при допустимой площади отсекается отдельно.
	cfg.MinArea = 0
	single := findExternalContours(maskFromRows("...", ".#.", "..."))[0]
	region := cfg.Evaluate(single.Area(), single.Perimeter(), single.BoundingRect().Add(image.Pt(300, 200)), frame)
	require.Equal(t, entity.RejectDegenerate, region.Rejection)
}
