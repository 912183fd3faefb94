package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"story-wall/internal/storage"
)

// Spreadsheet column order. Rows are always written in this order no matter
// how the request body was keyed.
var sheetColumns = []string{"id", "created_at", "nickname", "story"}

// recordLocation fixes the created_at timezone. Falls back to UTC+8 when the
// host has no tzdata.
var recordLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}()

const createdAtLayout = "2006/01/02 15:04:05"

type submitRequest struct {
	Nickname string `json:"nickname"`
	Story    string `json:"story"`
}

type ResponseRecord struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Nickname  string `json:"nickname"`
	Story     string `json:"story"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "故事牆服務運作中"})
}

func (s *Server) handleResponses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Nickname == "" || req.Story == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "請填寫暱稱與故事內容"})
		return
	}

	received := s.now()
	record := ResponseRecord{
		ID:        strconv.FormatInt(received.UnixMilli(), 10),
		CreatedAt: received.In(recordLocation).Format(createdAtLayout),
		Nickname:  req.Nickname,
		Story:     req.Story,
	}

	row := map[string]string{
		"id":         record.ID,
		"created_at": record.CreatedAt,
		"nickname":   record.Nickname,
		"story":      record.Story,
	}
	if err := s.appender.Append(r.Context(), s.sheetRange, sheetColumns, row); err != nil {
		log.Printf("❌ [%s] append failed: %v", requestIDFrom(r.Context()), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "寫入資料失敗,請稍後再試",
			"error":   err.Error(),
		})
		return
	}

	if s.recorder != nil {
		ev := storage.SubmissionEvent{
			RequestID:  requestIDFrom(r.Context()),
			ReceivedAt: received.UTC(),
			Record:     row,
		}
		// The sheet append already succeeded; a failing audit log is not
		// the caller's problem.
		if err := s.recorder.AppendSubmission(ev); err != nil {
			log.Printf("failed to record submission: %v", err)
		}
	}

	log.Printf("✅ [%s] appended story from %q", requestIDFrom(r.Context()), record.Nickname)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "感謝你的分享!",
		"data":    record,
	})
}
