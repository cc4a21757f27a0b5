package main

import (
	"bytes"
	"flag"
	"image/png"
	"net/http"
	"strconv"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/pixelbrush/gridtone"
)

var addr = flag.String("addr", ":8470", "listen address")

func main() {
	flag.Parse()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())

	api := e.Group("/api")

	api.POST("/convert", handleConvert)
	api.POST("/preview", handlePreview)

	log.Fatal(e.Start(*addr))
}

// requestOptions reads conversion parameters from the query string, using
// the same defaults as the CLI.
func requestOptions(c echo.Context) gridtone.Options {
	opts := gridtone.Options{
		Width:          15,
		Height:         15,
		Mode:           gridtone.ModeTonal,
		PaletteSize:    32,
		Buckets:        6,
		AlphaThreshold: gridtone.DefaultAlphaThreshold,
	}
	if v, err := strconv.Atoi(c.QueryParam("width")); err == nil {
		opts.Width = v
	}
	if v, err := strconv.Atoi(c.QueryParam("height")); err == nil {
		opts.Height = v
	}
	if v := c.QueryParam("mode"); v != "" {
		opts.Mode = gridtone.Mode(v)
	}
	if v, err := strconv.Atoi(c.QueryParam("palette-size")); err == nil {
		opts.PaletteSize = v
	}
	if v, err := strconv.Atoi(c.QueryParam("buckets")); err == nil {
		opts.Buckets = v
	}
	if v, err := strconv.Atoi(c.QueryParam("alpha-threshold")); err == nil {
		opts.AlphaThreshold = v
	}
	return opts
}

func convertRequest(c echo.Context) (*gridtone.Template, error) {
	opts := requestOptions(c)

	img, err := gridtone.DecodeImage(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "cannot decode image: "+err.Error())
	}

	pixels := gridtone.ImagePixels(gridtone.ResizeImage(img, opts.Width, opts.Height))
	tpl, err := gridtone.Convert(pixels, opts)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return tpl, nil
}

func handleConvert(c echo.Context) error {
	tpl, err := convertRequest(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tpl)
}

func handlePreview(c echo.Context) error {
	tpl, err := convertRequest(c)
	if err != nil {
		return err
	}

	scale := 8
	if v, err := strconv.Atoi(c.QueryParam("scale")); err == nil && v > 0 {
		scale = v
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gridtone.PreviewImage(tpl, scale)); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
