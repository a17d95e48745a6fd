package services

import (
	"context"
	"encoding/json"
	"time"

	"ems-http-service/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService 定义Redis服务接口
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	AcquireScanLock(day string, ttl time.Duration) (bool, error)
	ReleaseScanLock(day string) error
	Ping() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Ping 检测Redis连接
func (s *RedisService) Ping() error {
	return s.Client.Ping(s.Ctx).Err()
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// AcquireScanLock 以SETNX方式获取当日提醒扫描锁，防止两次扫描并发执行
func (s *RedisService) AcquireScanLock(day string, ttl time.Duration) (bool, error) {
	key := "alert_scan_lock:" + day
	return s.Client.SetNX(s.Ctx, key, time.Now().Unix(), ttl).Result()
}

// ReleaseScanLock 释放当日提醒扫描锁
func (s *RedisService) ReleaseScanLock(day string) error {
	key := "alert_scan_lock:" + day
	return s.Client.Del(s.Ctx, key).Err()
}
