package services

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/Jordo960/VibePulse/apperrors"
)

// LabelDetector is the subset of *rekognition.Client the photo service uses.
type LabelDetector interface {
	DetectLabels(ctx context.Context, in *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// PhotoService names the food in a photo so it can be estimated as text.
type PhotoService struct {
	client LabelDetector
}

func NewPhotoService(client LabelDetector) *PhotoService {
	return &PhotoService{client: client}
}

// DecodeDataURI extracts the bytes of a base64 "data:image/...;base64," URI.
func DecodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, "data:image") {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid data URI")
	}
	i := strings.Index(uri, ";base64,")
	if i < 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "data URI is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(uri[i+len(";base64,"):])
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeValidation, "invalid image encoding", err)
	}
	return data, nil
}

// Describe returns the most confident label for the image.
func (p *PhotoService) Describe(ctx context.Context, dataURI string) (string, error) {
	data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	if p.client == nil {
		return "", apperrors.New(apperrors.CodeEstimateFailed, "photo recognition is not configured")
	}
	out, err := p.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeEstimateFailed, EstimateFailedMessage, err)
	}
	var best string
	var bestConf float32
	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		c := aws.ToFloat32(l.Confidence)
		if best == "" || c > bestConf {
			best, bestConf = *l.Name, c
		}
	}
	if best == "" {
		return "", apperrors.New(apperrors.CodeEstimateFailed, "no food recognised in photo")
	}
	return best, nil
}
