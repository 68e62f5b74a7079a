package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kgraph/internal/server/middleware"
	"kgraph/internal/util"
	"kgraph/pkg/ai"
	"kgraph/pkg/graph"
	"kgraph/pkg/logger"
	"kgraph/pkg/triples"
)

type errorResponse struct {
	Error string `json:"error"`
}

type uploadResponse struct {
	ImageURL string `json:"image_url"`
}

// UploadPDFHandler runs the full pipeline for one uploaded PDF: store the
// upload, extract its text, ask the model for triples, render the
// knowledge graph and answer with the image URL.
//
// Only two failure classes get a structured payload: a missing file field
// (400) and an empty extraction result (500). Everything else propagates
// to echo's error handling as a generic server failure.
func UploadPDFHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	file, err := c.FormFile("pdf")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "No PDF file uploaded",
		})
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	pdfPath, err := app.Store.SaveUpload(file.Filename, src)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	text, err := app.Loader.GetFileText(ctx, pdfPath)
	if err != nil {
		return err
	}
	text, err = util.TruncateTokens(text, app.Config.MaxPromptTokens)
	if err != nil {
		return err
	}

	set, err := triples.Extract(ctx, app.AiClient, text,
		ai.WithModel(app.Config.AIExtractModel),
	)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		logger.Warn("No triples extracted", "file", file.Filename)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "No triples extracted from PDF",
		})
	}

	kg, skipped := graph.Build(set)
	if skipped > 0 {
		logger.Warn("Skipped incomplete triples",
			"skipped", skipped,
			"total", len(set),
			"file", file.Filename,
		)
	}

	imageName, err := util.RandomFileName(".png")
	if err != nil {
		return err
	}
	imagePath := app.Store.GeneratedPath(imageName)
	if err := kg.Render(imagePath, graph.RenderOptions{
		Seed: app.Config.LayoutSeed,
	}); err != nil {
		return err
	}

	metrics := app.AiClient.GetMetrics()
	logger.Info("Generated knowledge graph",
		"file", file.Filename,
		"triples", len(set),
		"nodes", kg.NodeCount(),
		"edges", kg.EdgeCount(),
		"image", imageName,
		"tokens", metrics.TotalTokens,
		"duration_ms", metrics.DurationMs,
	)

	return c.JSON(http.StatusOK, uploadResponse{
		ImageURL: "/generated/" + imageName,
	})
}
