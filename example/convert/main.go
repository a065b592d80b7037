//go:build example

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hangxie/citygeom/sdo"
	"github.com/hangxie/citygeom/wkb"
	"github.com/hangxie/citygeom/wkt"
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	// A building footprint with a courtyard, as it comes out of an importer
	input := "SRID=25832;POLYGON Z ((0 0 10, 20 0 10, 20 15 10, 0 15 10, 0 0 10), (5 5 10, 5 10 10, 10 10 10, 10 5 10, 5 5 10))"

	g, err := wkt.NewReader().Read(input)
	if err != nil {
		log.Fatal(err)
	}
	env := g.Envelope()
	log.WithFields(logrus.Fields{
		"type":  g.Type(),
		"dim":   g.VertexDimension(),
		"lower": env.LowerCorner(),
		"upper": env.UpperCorner(),
	}).Info("parsed WKT")

	// WKB, the way PostGIS wants it
	hex, err := wkb.NewWriter(wkb.WriterOptions{IncludeSRID: true}).WriteHex(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("EWKB:", hex)

	fromWKB, err := wkb.NewReader().ReadHex(hex)
	if err != nil {
		log.Fatal(err)
	}

	// SDO, the way a vendor spatial column wants it
	obj, err := sdo.NewEncoder().Encode(fromWKB)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("SDO: gtype=%d srid=%d elemInfo=%v ordinates=%d\n", obj.GType, obj.SRID, obj.ElemInfo, len(obj.Ordinates))

	fromSDO, err := sdo.NewDecoder(sdo.DecoderOptions{Logger: log}).Decode(obj)
	if err != nil {
		log.Fatal(err)
	}

	out, err := wkt.NewWriter(wkt.WriterOptions{IncludeSRID: true}).Write(fromSDO.Force2D())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("WKT (2D):", out)

	// a box-optimized solid decodes to six faces
	box, err := sdo.NewDecoder(sdo.DecoderOptions{Logger: log}).Decode(sdo.Object{
		GType:     3008,
		SRID:      25832,
		ElemInfo:  []int{1, 1007, 3},
		Ordinates: []float64{0, 0, 0, 20, 15, 10},
	})
	if err != nil {
		log.Fatal(err)
	}
	solid, err := wkt.NewWriter().Write(box)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Solid:", solid)
}
