package utils

import "time"

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp   time.Time `json:"timestamp"`
	RecordCount *int      `json:"record_count,omitempty"`
	AnalysisID  string    `json:"analysis_id,omitempty"`
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
	}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp: time.Now(),
		},
	}
}

// CreateRecordsResponse wraps a tabular result and reports its row count
// so chart-building clients can size the payload without walking it.
func CreateRecordsResponse(data any, recordCount int) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp:   time.Now(),
			RecordCount: &recordCount,
		},
	}
}

// CreateAnalysisResponse additionally tags the response with the id of
// the assessment run that produced it.
func CreateAnalysisResponse(data any, recordCount int, analysisID string) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp:   time.Now(),
			RecordCount: &recordCount,
			AnalysisID:  analysisID,
		},
	}
}
