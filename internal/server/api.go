package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bfctl/internal/bf"
	"bfctl/internal/store"
	appver "bfctl/internal/version"
)

// errBudget is returned when a run exceeds its step budget.
var errBudget = errors.New("step budget exhausted")

// RunRequest is the body of POST /api/run.
type RunRequest struct {
	Source   string `json:"source" jsonschema:"description=program text; non-command characters are ignored"`
	Input    string `json:"input,omitempty" jsonschema:"description=characters consumed by ','"`
	EOF      string `json:"eof,omitempty" jsonschema:"enum=fail,enum=zero,description=behaviour when input runs out"`
	MaxSteps int    `json:"max_steps,omitempty" jsonschema:"minimum=0,description=step budget; capped by the server"`
}

// RunResponse is the success body of POST /api/run.
type RunResponse struct {
	Output  string       `json:"output" jsonschema:"description=output bytes as Latin-1 text"`
	Display string       `json:"display" jsonschema:"description=output with NUL shown as '.'"`
	Tape    []store.Cell `json:"tape"`
	Pointer int          `json:"pointer"`
	Steps   int          `json:"steps"`
}

// CheckRequest is the body of POST /api/check.
type CheckRequest struct {
	Source string `json:"source" jsonschema:"description=program text"`
}

// CheckResponse reports the command count and loop structure of a program.
type CheckResponse struct {
	OK       bool   `json:"ok"`
	Commands int    `json:"commands"`
	Loops    int    `json:"loops"`
	Error    string `json:"error,omitempty"`
	Index    *int   `json:"index,omitempty"`
}

// ErrorResponse is returned for rejected programs and failed runs.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty" jsonschema:"enum=unbalanced_loop,enum=input_exhausted,enum=tape_bounds,enum=bad_request"`
	Index   *int   `json:"index,omitempty"`
	Address *int   `json:"address,omitempty"`
}

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/examples", func(c *gin.Context) {
		c.JSON(http.StatusOK, bf.Examples)
	})
	api.POST("/run", s.runHandler)
	api.POST("/check", checkHandler)
}

func (s *Server) runHandler(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}
	policy, ok := bf.ParseEOF(req.EOF)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown eof policy %q", req.EOF), Kind: "bad_request"})
		return
	}
	prog, err := bf.Compile(req.Source)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	limit := s.budget()
	if req.MaxSteps > 0 && req.MaxSteps < limit {
		limit = req.MaxSteps
	}
	e := bf.New(prog, append([]bf.Option{bf.WithInput(req.Input), bf.WithInputPolicy(policy)}, s.Engine...)...)
	if err := runBounded(c, e, limit); err != nil {
		if errors.Is(err, errBudget) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		if c.Request.Context().Err() != nil {
			return
		}
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	out := e.Output()
	c.JSON(http.StatusOK, RunResponse{
		Output:  bf.Text(out),
		Display: bf.Display(out),
		Tape:    store.Encode(e.Snapshot()).Cells,
		Pointer: e.Pointer(),
		Steps:   e.Steps(),
	})
}

// runBounded steps e until it finishes, fails, the request goes away or
// limit steps have run.
func runBounded(c *gin.Context, e *bf.Engine, limit int) error {
	ctx := c.Request.Context()
	for !e.Done() {
		if e.Steps() >= limit {
			return errBudget
		}
		if e.Steps()%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

func checkHandler(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}
	cmds := bf.Parse(req.Source)
	resp := CheckResponse{Commands: len(cmds)}
	bm, err := bf.BuildBracketMap(cmds)
	if err != nil {
		eb := errorBody(err)
		resp.Error, resp.Index = eb.Error, eb.Index
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.OK = true
	resp.Loops = bm.Loops()
	c.JSON(http.StatusOK, resp)
}

func errorBody(err error) ErrorResponse {
	body := ErrorResponse{Error: err.Error()}
	var ul *bf.UnbalancedLoopError
	var ie *bf.InputExhaustedError
	var tb *bf.TapeBoundsError
	switch {
	case errors.As(err, &ul):
		body.Kind, body.Index = "unbalanced_loop", intPtr(ul.Index)
	case errors.As(err, &ie):
		body.Kind, body.Index = "input_exhausted", intPtr(ie.Index)
	case errors.As(err, &tb):
		body.Kind, body.Address = "tape_bounds", intPtr(tb.Address)
	}
	return body
}

func intPtr(v int) *int { return &v }
