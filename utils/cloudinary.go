package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

// InitCloudinary connects to Cloudinary and verifies the credentials.
func InitCloudinary() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("the Cloudinary environment variables are not set")
	}

	var err error
	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err = cld.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("error verifying the Cloudinary connection: %v", err)
	}

	LogSuccess("Cloudinary initialized and connection verified")
	return nil
}

func isValidImageType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".pdf"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadReceipt stores a payment receipt image and returns its public URL
// and Cloudinary public id.
func UploadReceipt(file *multipart.FileHeader) (string, string, error) {
	if !isValidImageType(file.Filename) {
		return "", "", fmt.Errorf("unsupported receipt format, use JPG, PNG, GIF, WEBP, BMP or PDF")
	}

	// 10MB cap, same as the frontend upload widget.
	if file.Size > 10*1024*1024 {
		return "", "", fmt.Errorf("receipt file too large, 10MB maximum")
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return "", "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("error opening the file: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("receipt_%d", time.Now().UnixNano())
	overwrite := true
	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID:  publicID,
		Folder:    "receipts",
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", "", fmt.Errorf("error uploading the receipt: %v", err)
	}

	return result.SecureURL, result.PublicID, nil
}

// DeleteReceipt removes an uploaded receipt by its Cloudinary public id.
// Used to clean up assets whose payment record never made it to the database.
func DeleteReceipt(publicID string) error {
	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("error deleting the receipt: %v", err)
	}
	return nil
}
