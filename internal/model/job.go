package model

import "time"

type Op string

const (
	OpCompress   Op = "compress"
	OpDecompress Op = "decompress"
)

// Job 은 compress/decompress 요청 한 건의 기록이에요.
type Job struct {
	ID         string    `json:"id"`
	Op         Op        `json:"op"`
	FileName   string    `json:"file_name"`
	OutputName string    `json:"output_name,omitempty"`
	InputSize  int64     `json:"input_size"`
	OutputSize int64     `json:"output_size"`
	DurationMs int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
