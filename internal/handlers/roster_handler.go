package handlers

import (
	"net/http"

	"sportclash/internal/service"
)

// RosterHandler covers class and student management
type RosterHandler struct {
	rosterService *service.RosterService
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *service.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

type createClassRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type classView struct {
	ID        int64  `json:"id"`
	TeacherID int64  `json:"teacherId"`
	Name      string `json:"name"`
}

// CreateClass creates a class owned by the authenticated teacher
func (h *RosterHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required", "", nil)
		return
	}

	var req createClassRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}

	class, err := h.rosterService.CreateClass(user.ID, req.Name)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, classView{ID: class.ID, TeacherID: class.TeacherID, Name: class.Name})
}

type createStudentRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

type studentView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CreateStudent creates a student
func (h *RosterHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req createStudentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}

	student, err := h.rosterService.CreateStudent(req.Name, req.Email)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, studentView{ID: student.ID, Name: student.Name, Email: student.Email})
}

type enrollRequest struct {
	StudentID int64 `json:"studentId" validate:"required,gt=0"`
}

// Enroll makes a student an active member of the class in the path
func (h *RosterHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	var req enrollRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}

	if err := h.rosterService.Enroll(classID, req.StudentID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "enrolled"})
}

// GetRoster lists the active students of the class in the path
func (h *RosterHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	roster, err := h.rosterService.GetRoster(classID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	views := make([]studentView, 0, len(roster))
	for _, s := range roster {
		views = append(views, studentView{ID: s.ID, Name: s.Name, Email: s.Email})
	}
	respondWithJSON(w, http.StatusOK, views)
}
