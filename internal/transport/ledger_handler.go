// Package transport exposes the node's HTTP and gRPC handlers.
package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/quorumledger/internal/consensus"
	"github.com/goodnatureofminers/quorumledger/internal/ledger"
)

const (
	msgDataAdded        = "Data added successfully"
	msgModifyApproved   = "Modification approved by peers."
	msgModifyRejected   = "Modification rejected by peers."
	msgChangeApproved   = "Change approved"
	msgChangeRejected   = "Change rejected"
	defaultMaxBodyBytes = 1 << 20
)

// LedgerHandler serves the node's REST API.
type LedgerHandler struct {
	service      LedgerService
	policy       ApprovalPolicy
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewLedgerHandler constructs a LedgerHandler. A nil policy approves everything.
func NewLedgerHandler(service LedgerService, policy ApprovalPolicy, logger *zap.Logger) *LedgerHandler {
	if policy == nil {
		policy = ApproveAll{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{
		service:      service,
		policy:       policy,
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       logger.Named("ledger_handler"),
	}
}

// Register mounts the API routes on mux.
func (h *LedgerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /addData", h.addData)
	mux.HandleFunc("PUT /modifyData/{index}", h.modifyData)
	mux.HandleFunc("GET /getChain", h.getChain)
	mux.HandleFunc("GET /validateChain", h.validateChain)
	mux.HandleFunc("POST /validateChange", h.validateChange)
	mux.HandleFunc("GET /healthz", h.healthz)
}

type messageResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

type addDataResponse struct {
	Message string       `json:"message"`
	Block   ledger.Block `json:"block"`
}

type modifyDataResponse struct {
	Message string         `json:"message"`
	Chain   []ledger.Block `json:"chain"`
}

type validateChainResponse struct {
	IsValid bool `json:"isValid"`
}

// validateChangeRequest accepts the index either as a number or as a decimal
// string, the latter being what route-parameter based peers send.
type validateChangeRequest struct {
	Index   json.RawMessage `json:"index"`
	NewData json.RawMessage `json:"newData"`
}

func (h *LedgerHandler) addData(w http.ResponseWriter, r *http.Request) {
	data, err := h.readJSON(w, r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}

	block, err := h.service.AddData(r.Context(), data)
	if err != nil {
		h.writeError(w, "add data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, addDataResponse{Message: msgDataAdded, Block: block})
}

func (h *LedgerHandler) modifyData(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "index must be an integer"})
		return
	}
	data, err := h.readJSON(w, r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}

	outcome, err := h.service.ModifyData(r.Context(), index, data)
	if err != nil {
		h.writeError(w, "modify data", err)
		return
	}
	if !outcome.Approved {
		h.writeJSON(w, http.StatusForbidden, messageResponse{Message: msgModifyRejected})
		return
	}
	h.writeJSON(w, http.StatusOK, modifyDataResponse{Message: msgModifyApproved, Chain: outcome.Chain})
}

func (h *LedgerHandler) getChain(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Chain())
}

func (h *LedgerHandler) validateChain(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, validateChainResponse{IsValid: h.service.Validate()})
}

func (h *LedgerHandler) validateChange(w http.ResponseWriter, r *http.Request) {
	body, err := h.readJSON(w, r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	var req validateChangeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "body must be an object with index and newData"})
		return
	}
	index, err := parseIndex(req.Index)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}

	approved, reason := h.policy.Approve(r.Context(), index, req.NewData)
	h.logger.Debug("change vote", zap.Int("index", index), zap.Bool("approved", approved), zap.String("reason", reason))
	if !approved {
		h.writeJSON(w, http.StatusForbidden, messageResponse{Message: msgChangeRejected, Reason: reason})
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: msgChangeApproved})
}

func (h *LedgerHandler) healthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func parseIndex(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("index must be an integer")
}

func (h *LedgerHandler) readJSON(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.New("request body too large")
		}
		return nil, errors.New("failed to read request body")
	}
	if !json.Valid(body) {
		return nil, errors.New("request body must be valid JSON")
	}
	return body, nil
}

func (h *LedgerHandler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ledger.ErrSerialization):
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, consensus.ErrInvalidQuorum):
		h.logger.Error(op+" failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "invalid quorum configuration"})
	default:
		h.logger.Warn(op+" failed", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, messageResponse{Message: err.Error()})
	}
}

func (h *LedgerHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
