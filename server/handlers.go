// Package server exposes the connector renderer over HTTP: one-shot
// routing and rendering plus a small store of named scenes.
package server

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"tether/diagram"
	"tether/export"
	"tether/render"
	"tether/storage"
)

// Handler bundles the HTTP handlers and their dependencies.
type Handler struct {
	store *storage.Store
}

// NewHandler creates a handler backed by the given scene store. The store
// may be nil when the service runs without persistence.
func NewHandler(store *storage.Store) *Handler {
	return &Handler{store: store}
}

// Route computes a single connector path and returns it as JSON path
// commands. Absent elements or an unknown shape yield 204 No Content.
func (h *Handler) Route(c fiber.Ctx) error {
	var req diagram.ConnectRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Printf("[ROUTE] decode error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON payload",
		})
	}

	d := render.Connect(req)
	if d == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(d)
}

// Render composes a whole scene and returns it in the requested format
// (svg by default; png, ascii and json are also available).
func (h *Handler) Render(c fiber.Ctx) error {
	var scene diagram.Scene
	if err := json.Unmarshal(c.Body(), &scene); err != nil {
		log.Printf("[RENDER] decode error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON payload",
		})
	}
	return h.renderScene(c, &scene)
}

// SaveScene stores a scene and returns its new ID.
func (h *Handler) SaveScene(c fiber.Ctx) error {
	var scene diagram.Scene
	if err := json.Unmarshal(c.Body(), &scene); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON payload",
		})
	}

	id, err := h.store.Save(c.Context(), &scene)
	if err != nil {
		log.Printf("[SCENES] save error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// GetScene returns a stored scene as JSON.
func (h *Handler) GetScene(c fiber.Ctx) error {
	scene, err := h.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(scene)
}

// ListScenes returns the stored scene listing.
func (h *Handler) ListScenes(c fiber.Ctx) error {
	infos, err := h.store.List(c.Context())
	if err != nil {
		log.Printf("[SCENES] list error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if infos == nil {
		infos = []storage.SceneInfo{}
	}
	return c.JSON(infos)
}

// DeleteScene removes a stored scene.
func (h *Handler) DeleteScene(c fiber.Ctx) error {
	if err := h.store.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RenderScene renders a stored scene in the requested format.
func (h *Handler) RenderScene(c fiber.Ctx) error {
	scene, err := h.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return h.renderScene(c, scene)
}

func (h *Handler) renderScene(c fiber.Ctx, scene *diagram.Scene) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	out, err := exporter.Export(render.ComposeScene(scene))
	if err != nil {
		log.Printf("[RENDER] export error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Content-Type", contentType(format))
	return c.Send(out)
}

func contentType(format export.Format) string {
	switch format {
	case export.FormatPNG:
		return "image/png"
	case export.FormatASCII:
		return "text/plain; charset=utf-8"
	case export.FormatJSON:
		return "application/json"
	default:
		return "image/svg+xml"
	}
}
