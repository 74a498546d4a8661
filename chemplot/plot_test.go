package chemplot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRamaPlot(Te *testing.T) {
	data := [][]float64{{-57, -47}, {-120, 140}, {-60, -40}, {60, 40}}
	name := filepath.Join(Te.TempDir(), "rama")
	err := RamaPlot(data, []int{1}, "Test plot", name)
	if err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Errorf("Empty plot file")
	}
}

func TestRamaPlotShapes(Te *testing.T) {
	//only 4 data points can be tagged; the 5th gets an error and the
	//default glyph
	for i := 0; i < 4; i++ {
		if _, err := getShape(i); err != nil {
			Te.Errorf("Shape %d rejected: %v", i, err)
		}
	}
	if _, err := getShape(4); err == nil {
		Te.Errorf("More than 4 tagged shapes accepted")
	}
}
