// Package grpcembedder implements the embedder contract against the gRPC
// model service that hosts the detection and embedding networks.
package grpcembedder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/educonnect/faceauth/internal/embedder"
	"github.com/educonnect/faceauth/internal/face"
	"github.com/educonnect/faceauth/internal/imagecodec"
	"github.com/educonnect/faceauth/internal/logging"
	proto "github.com/educonnect/faceauth/proto"
)

// Dial returns a ready-to-use client for the face embedding service.
func Dial(ctx context.Context, addr string, logger *zap.Logger) (embedder.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcembedder.dial", "", err)
		logger.Error("failed to dial face embedder", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewFaceEmbedderClient(conn)
	return &grpcEmbedder{client: client, logger: logger}, conn, nil
}

type grpcEmbedder struct {
	client proto.FaceEmbedderClient
	logger *zap.Logger
}

func (g *grpcEmbedder) DetectAndEmbed(ctx context.Context, img *imagecodec.Image) ([]embedder.Detection, error) {
	resp, err := g.client.DetectAndEmbed(ctx, &proto.DetectRequest{ImageData: img.Bytes, Format: img.Format})
	if err != nil {
		wrapped := logging.NewOperationError("grpcembedder.detect_and_embed", "", err)
		g.logger.Error("face embedder call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	detections := make([]embedder.Detection, 0, len(resp.GetDetections()))
	for _, d := range resp.GetDetections() {
		detection := embedder.Detection{
			Descriptor: face.Descriptor(d.GetDescriptor_()),
			Confidence: d.GetConfidence(),
		}
		if box := d.GetBox(); box != nil {
			detection.Box = embedder.Box{
				X:      int(box.GetX()),
				Y:      int(box.GetY()),
				Width:  int(box.GetWidth()),
				Height: int(box.GetHeight()),
			}
		}
		detections = append(detections, detection)
	}
	return detections, nil
}

func (g *grpcEmbedder) Warmup(ctx context.Context) error {
	resp, err := g.client.Warmup(ctx, &proto.WarmupRequest{})
	if err != nil {
		return logging.NewOperationError("grpcembedder.warmup", "", err)
	}
	if !resp.GetReady() {
		return logging.NewOperationError("grpcembedder.warmup", "", fmt.Errorf("model not ready (version %q)", resp.GetModelVersion()))
	}
	g.logger.Info("face embedder warm", zap.String("model_version", resp.GetModelVersion()))
	return nil
}
