package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// สร้าง bucket สำหรับ media (logo, banner, product, item) + เปิด public read
func main() {
	godotenv.Load()

	endpoint := getenv("S3_ENDPOINT", "localhost:9000")
	accessKey := getenv("S3_ACCESS_KEY", "minioadmin")
	secretKey := getenv("S3_SECRET_KEY", "minioadmin")
	bucket := getenv("S3_BUCKET", "menu-media")
	useSSL := os.Getenv("S3_USE_SSL") == "true"
	region := getenv("S3_REGION", "auto")

	fmt.Printf("Endpoint: %s\nBucket: %s\n\n", endpoint, bucket)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		fmt.Printf("✓ Bucket '%s' created\n", bucket)
	} else {
		fmt.Printf("✓ Bucket '%s' exists\n", bucket)
	}

	// media ทั้ง bucket เป็น public read — หน้าเมนูลูกค้าดึงรูปตรงจาก storage
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Sid":       "PublicReadMedia",
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucket)},
			},
		},
	}
	policyJSON, _ := json.Marshal(policy)

	if err := client.SetBucketPolicy(ctx, bucket, string(policyJSON)); err != nil {
		log.Printf("Warning: failed to set policy: %v", err)
	} else {
		fmt.Println("✓ Public read policy applied")
	}

	fmt.Println("Done")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
