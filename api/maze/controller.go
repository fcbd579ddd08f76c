package mazeapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestTimeout = 10 * time.Second
)

// MazeController serves maze generation and archive routes.
type MazeController struct {
	mazes    i.MazeGenerator
	renderer i.Renderer
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeGenerator, renderer i.Renderer) (*MazeController, error) {
	if mazes == nil || renderer == nil {
		return nil, errors.New("maze generator and renderer are required")
	}
	return &MazeController{
		mazes:    mazes,
		renderer: renderer,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/generate", mc.generate)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/image", mc.image)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.list)
		mazes.DELETE("/:ID", mc.delete)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var seed *int64
	if raw, ok := ctx.GetQuery("seed"); ok {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		seed = &value
	}

	if request.Format == "" {
		request.Format = FormatPNG
	}
	if request.Format != FormatPNG && request.Format != FormatJSON && request.Format != FormatText {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of png, json, text"})
		return
	}

	if request.Format == FormatPNG {
		if err := mc.renderer.Check(request.Width, request.Height); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	record, err := mc.mazes.Generate(timeoutCtx, request.Width, request.Height, seed)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidSize) || errors.Is(err, maze.ErrInvalidParity) || errors.Is(err, service.ErrTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.Header("X-Maze-ID", record.ID.String())
	ctx.Header("X-Maze-Seed", strconv.FormatInt(record.Seed, 10))
	mc.write(ctx, record, request.Format)
}

// byID retrieves an archived maze as JSON.
func (mc *MazeController) byID(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	mc.write(ctx, record, FormatJSON)
}

// image retrieves an archived maze as an image.
func (mc *MazeController) image(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	mc.write(ctx, record, FormatPNG)
}

// list returns the newest archived mazes.
func (mc *MazeController) list(ctx *gin.Context) {
	var request ListRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	records, err := mc.mazes.List(timeoutCtx, request.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}

	response := ListResponse{Mazes: make([]MazeResponse, 0, len(records))}
	for _, r := range records {
		response.Mazes = append(response.Mazes, toResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

// delete removes an archived maze.
func (mc *MazeController) delete(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	if err := mc.mazes.Delete(timeoutCtx, ID); err != nil {
		if errors.Is(err, dmn.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while deleting maze"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

func (mc *MazeController) lookup(ctx *gin.Context) (*dmn.MazeRecord, bool) {
	ID, ok := parseID(ctx)
	if !ok {
		return nil, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	record, err := mc.mazes.ByID(timeoutCtx, ID)
	if err != nil {
		if errors.Is(err, dmn.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return nil, false
	}
	return record, true
}

// write sends the record in the requested format.
func (mc *MazeController) write(ctx *gin.Context, record *dmn.MazeRecord, format string) {
	if format == FormatJSON {
		ctx.JSON(http.StatusOK, toResponse(record))
		return
	}

	m, err := record.Maze()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "stored maze is corrupt"})
		return
	}

	if format == FormatText {
		ctx.String(http.StatusOK, m.String())
		return
	}

	var buf bytes.Buffer
	if err := mc.renderer.Render(&buf, m); err != nil {
		if errors.Is(err, render.ErrImageTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering maze"})
		return
	}
	ctx.Data(http.StatusOK, mc.renderer.ContentType(), buf.Bytes())
}
