package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TechWithDunamix/govevote/internal/model"
	"github.com/TechWithDunamix/govevote/internal/registry"
	"github.com/TechWithDunamix/govevote/internal/store"
)

func (s *Server) handleVoterRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}

	var candidate registry.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}

	voter, err := s.registry.Register(r.Context(), candidate)
	if err != nil {
		var dup *registry.DuplicateIdentityError
		switch {
		case errors.As(err, &dup):
			writeError(w, http.StatusConflict, "conflict", duplicateMessage(dup))
		default:
			writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, voter)
}

func duplicateMessage(dup *registry.DuplicateIdentityError) string {
	if dup.Field == "nin" {
		return "a voter with this NIN already exists"
	}
	return "a voter with this PVC number already exists"
}

func (s *Server) handleVotersList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET only")
		return
	}

	voters, err := s.registry.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to list voters")
		return
	}
	if voters == nil {
		voters = []model.Voter{}
	}
	writeJSON(w, http.StatusOK, voters)
}

func (s *Server) handleVoter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		voter, err := s.registry.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "Voter not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal", "failed to get voter")
			return
		}
		writeJSON(w, http.StatusOK, voter)

	case http.MethodPut:
		var patch store.VoterPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
			return
		}
		voter, err := s.registry.Update(r.Context(), id, patch)
		if err != nil {
			var dup *registry.DuplicateIdentityError
			switch {
			case errors.Is(err, store.ErrNotFound):
				writeError(w, http.StatusNotFound, "not_found", "Voter not found")
			case errors.As(err, &dup):
				writeError(w, http.StatusConflict, "conflict", duplicateMessage(dup))
			default:
				writeError(w, http.StatusInternalServerError, "internal", "failed to update voter")
			}
			return
		}
		writeJSON(w, http.StatusOK, voter)

	case http.MethodDelete:
		if err := s.registry.Delete(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "Voter not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal", "failed to delete voter")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Voter deleted successfully"})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET, PUT or DELETE only")
	}
}

func (s *Server) handleVoterVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}

	var req registry.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}

	res, err := s.registry.Verify(r.Context(), r.PathValue("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Voter not found")
		case errors.Is(err, registry.ErrNothingToVerify):
			writeError(w, http.StatusBadRequest, "bad_request", "provide pvc_number or nin to verify")
		case errors.Is(err, registry.ErrDocumentMismatch):
			writeError(w, http.StatusBadRequest, "bad_request", "document does not match this voter record")
		default:
			writeError(w, http.StatusInternalServerError, "internal", "failed to verify voter")
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}
