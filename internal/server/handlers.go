package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/xmanojpx/SkillLens/internal/graph"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// evaluateRequest is the shared body for score and gap requests.
type evaluateRequest struct {
	Profile *types.CandidateProfile `json:"profile"`
	Role    string                  `json:"role"`
}

// batchRequest scores many profiles against one role.
type batchRequest struct {
	Profiles []*types.CandidateProfile `json:"profiles"`
	Role     string                    `json:"role"`
}

// pathRequest asks for a learning path.
type pathRequest struct {
	Profile            *types.CandidateProfile `json:"profile"`
	Role               string                  `json:"role"`
	IncludeRecommended bool                    `json:"include_recommended"`
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Profile == nil || req.Role == "" {
		s.errorResponse(w, http.StatusBadRequest, "profile and role are required")
		return
	}

	result, err := s.engine.Score(req.Profile, req.Role)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if len(req.Profiles) == 0 || req.Role == "" {
		s.errorResponse(w, http.StatusBadRequest, "profiles and role are required")
		return
	}

	results, err := s.engine.ScoreBatch(r.Context(), req.Profiles, req.Role)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"batch_id": uuid.New().String(),
		"role":     req.Role,
		"results":  results,
	})
}

func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Profile == nil || req.Role == "" {
		s.errorResponse(w, http.StatusBadRequest, "profile and role are required")
		return
	}

	report, err := s.engine.AnalyzeGap(req.Profile, req.Role)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Profile == nil || req.Role == "" {
		s.errorResponse(w, http.StatusBadRequest, "profile and role are required")
		return
	}

	path, err := s.engine.Plan(req.Profile, req.Role, req.IncludeRecommended)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, path)
}

func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": s.engine.Catalog().Graph().Skills(),
	})
}

func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	g := s.engine.Catalog().Graph()
	skill, ok := g.Skill(name)
	if !ok {
		err := &graph.UnknownSkillError{Skill: name}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	dependents, err := g.DependentsOf(name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	transitive, err := g.PrerequisitesOf(name, true)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skill":                    skill,
		"prerequisites":            g.DirectPrerequisites(name),
		"transitive_prerequisites": transitive,
		"dependents":               dependents,
	})
}

func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roles": s.engine.Catalog().Roles(),
	})
}

func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	role, err := s.engine.Catalog().Role(title)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, role)
}
