package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processOpenReq binds the open request body. An empty body opens the
// default source.
func (h *handler) processOpenReq(c *gin.Context) (openReq, error) {
	var req openReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

// processToggleReq binds and validates the toggle request body + URI param.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, req.validate()
}

// processLinkReq binds and validates the link press request body + URI param.
func (h *handler) processLinkReq(c *gin.Context) (linkReq, error) {
	var req linkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, req.validate()
}

// processViewReq binds the view query parameters.
func (h *handler) processViewReq(c *gin.Context) (viewReq, error) {
	var req viewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
