package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"ems-http-service/config"
	"ems-http-service/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// 通知推送主题前缀，完整主题为 ems/notifications/{userID}
const TopicNotificationPrefix = "ems/notifications/"

// InterfaceMQTTService 定义MQTT通知推送服务接口
type InterfaceMQTTService interface {
	Connect() error
	Disconnect()
	PublishNotification(n *models.Notification) error
}

// MQTTService 将新建的站内通知实时推送到前端订阅的MQTT主题
type MQTTService struct {
	Config         *config.Config
	Client         mqtt.Client
	isConnected    bool
	connectedMutex sync.RWMutex // 保护isConnected字段的读写
	publishMutex   sync.Mutex   // 保护消息发布
}

// NotificationMessage MQTT通知消息结构
type NotificationMessage struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// NewMQTTService 创建MQTT通知推送服务
func NewMQTTService(cfg *config.Config) InterfaceMQTTService {
	return &MQTTService{
		Config: cfg,
	}
}

// Connect 连接MQTT服务器；未配置MQTT_BROKER时跳过
func (s *MQTTService) Connect() error {
	if s.Config.MQTTBroker == "" {
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.Config.MQTTBroker).
		SetClientID("ems-server-" + uuid.New().String()[:8]).
		SetUsername(s.Config.MQTTUsername).
		SetPassword(s.Config.MQTTPassword).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	opts.OnConnect = func(client mqtt.Client) {
		s.connectedMutex.Lock()
		s.isConnected = true
		s.connectedMutex.Unlock()
		log.Println("MQTT连接成功")
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		s.connectedMutex.Lock()
		s.isConnected = false
		s.connectedMutex.Unlock()
		log.Printf("MQTT连接断开: %v", err)
	}

	s.Client = mqtt.NewClient(opts)
	token := s.Client.Connect()
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("连接MQTT服务器失败: %w", token.Error())
	}
	return nil
}

// Disconnect 断开MQTT连接
func (s *MQTTService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.connectedMutex.Lock()
	s.isConnected = false
	s.connectedMutex.Unlock()
}

// PublishNotification 将通知发布到收件人的专属主题；MQTT不可用时静默跳过
func (s *MQTTService) PublishNotification(n *models.Notification) error {
	s.connectedMutex.RLock()
	connected := s.isConnected
	s.connectedMutex.RUnlock()

	if !connected {
		return nil
	}

	msg := NotificationMessage{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Timestamp: time.Now().UnixMilli(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("%s%d", TopicNotificationPrefix, n.UserID)

	s.publishMutex.Lock()
	defer s.publishMutex.Unlock()

	token := s.Client.Publish(topic, 1, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("发布通知消息失败: %w", token.Error())
	}
	return nil
}
