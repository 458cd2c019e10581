package grpc

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// request holds every field a registry request may carry.
type request struct {
	ProjectID  string `json:"projectId,omitempty"`
	CommitHash string `json:"commitHash,omitempty"`
	Address    string `json:"address,omitempty"`
	Offset     int    `json:"offset,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

type itemsReply[T any] struct {
	Items []T `json:"items"`
}

type totalReply struct {
	Total int `json:"total"`
}

type countReply struct {
	Count int `json:"count"`
}

type recordedReply struct {
	Recorded bool `json:"recorded"`
}

// toStruct converts v to a struct message through its json form.
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding message: %w", err)
	}
	s := new(structpb.Struct)
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("converting message: %w", err)
	}

	return s, nil
}

// fromStruct decodes struct message s into v.
func fromStruct(s *structpb.Struct, v interface{}) error {
	data, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("converting message: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding message: %w", err)
	}

	return nil
}
