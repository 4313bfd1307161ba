package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tesla-buddy/pkg/mdview"
	"tesla-buddy/pkg/response"
)

// Open godoc
// @Summary     Open a checklist session
// @Description Loads a markdown checklist from source_url, inline content, or the default source.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body openReq false "Checklist source"
// @Success     200  {object} viewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checklists [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpenReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Open(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Open: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newViewResp(output.View))
}

// Detail godoc
// @Summary     Get checklist session
// @Description Returns the rendered blocks and progress of a session.
// @Tags        Checklist
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newViewResp(output.View))
}

// Reload godoc
// @Summary     Reload checklist session
// @Description Re-reads the session source. Every toggle made so far is discarded.
// @Tags        Checklist
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/{id}/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Reload(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Reload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newViewResp(output.View))
}

// Toggle godoc
// @Summary     Toggle a checklist item
// @Description Flips the item identified by depth and label.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Session ID"
// @Param       body body toggleReq true "Item key"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session or item not found"
// @Failure     409 {object} response.Resp "Session is read-only"
// @Router      /api/v1/checklists/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// PressLink godoc
// @Summary     Press a link
// @Description Asks whether the default navigation for a link should proceed.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Session ID"
// @Param       body body linkReq true "Link"
// @Success     200 {object} linkResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/{id}/links [POST]
func (h *handler) PressLink(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLinkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.PressLink(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PressLink: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLinkResp(output))
}

// View godoc
// @Summary     Checklist page
// @Description Renders the session as a standalone HTML page.
// @Tags        Checklist
// @Produce     html
// @Param       id    path  string true  "Session ID"
// @Param       theme query string false "light or dark"
// @Success     200
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/{id}/view [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processViewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	base := fmt.Sprintf("/api/v1/checklists/%s", id)
	var buf bytes.Buffer
	err = mdview.RenderPage(&buf, mdview.PageData{
		Title:     "Delivery Checklist",
		SessionID: id,
		Theme:     mdview.ParseTheme(req.Theme, h.defaultTheme),
		Tree:      output.View.Tree,
		ToggleURL: base + "/toggle",
		LinkURL:   base + "/links",
	})
	if err != nil {
		h.l.Errorf(ctx, "mdview.RenderPage: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Close godoc
// @Summary     Close checklist session
// @Description Discards a session and its checked state.
// @Tags        Checklist
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/{id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Close(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Close: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
