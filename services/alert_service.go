package services

import (
	"fmt"
	"log"
	"time"

	"ems-http-service/config"
	"ems-http-service/models"
	"ems-http-service/utils"

	"gorm.io/gorm"
)

// 提醒窗口
const (
	BirthdayWindowDays       = 7  // 生日提醒提前天数
	ContractExpiryWindowDays = 30 // 合同到期提醒提前天数
)

// ScanResult 表示一次提醒扫描的统计结果
type ScanResult struct {
	ScanID           string `json:"scan_id"`
	EmployeesScanned int    `json:"employees_scanned"`
	BirthdayAlerts   int    `json:"birthday_alerts"`
	ContractAlerts   int    `json:"contract_alerts"`
	Skipped          bool   `json:"skipped"` // 当日扫描锁被占用时为true
}

// InterfaceAlertService 定义提醒扫描服务接口
type InterfaceAlertService interface {
	ScanAll() (*ScanResult, error)
}

// AlertService 扫描全体员工并发出生日/合同到期提醒。
// 同一收件人同一类型每天至多一条：数据库唯一索引兜底，
// Redis当日扫描锁保证两次扫描不会并发执行。
type AlertService struct {
	DB            *gorm.DB
	Config        *config.Config
	Redis         InterfaceRedisService
	Notifications InterfaceNotificationService
	Email         InterfaceEmailService
	now           func() time.Time // 可注入的时钟，测试用
}

// NewAlertService 创建一个新的提醒扫描服务
func NewAlertService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService,
	notificationService InterfaceNotificationService, emailService InterfaceEmailService) *AlertService {
	return &AlertService{
		DB:            db,
		Config:        cfg,
		Redis:         redisService,
		Notifications: notificationService,
		Email:         emailService,
		now:           time.Now,
	}
}

// ScanAll 对全体员工执行一次提醒扫描
func (s *AlertService) ScanAll() (*ScanResult, error) {
	today := s.today()
	result := &ScanResult{ScanID: utils.GenerateScanID()}

	// 当日扫描锁，锁到午夜失效
	if s.Redis != nil {
		day := today.Format("2006-01-02")
		ttl := time.Until(today.AddDate(0, 0, 1))
		acquired, err := s.Redis.AcquireScanLock(day, ttl)
		if err != nil {
			// Redis不可用时退化为仅靠唯一索引去重
			log.Printf("获取扫描锁失败，继续执行扫描: %v", err)
		} else if !acquired {
			result.Skipped = true
			return result, nil
		}
	}

	var employees []models.Employee
	if err := s.DB.Find(&employees).Error; err != nil {
		return nil, err
	}
	result.EmployeesScanned = len(employees)

	for i := range employees {
		employee := &employees[i]

		user, err := s.recipientOf(employee)
		if err != nil {
			continue
		}

		if created, err := s.checkBirthday(employee, user, today); err != nil {
			log.Printf("[%s] 员工 %s 生日提醒失败: %v", result.ScanID, employee.EmployeeID, err)
		} else if created {
			result.BirthdayAlerts++
		}

		if created, err := s.checkContractExpiry(employee, user, today); err != nil {
			log.Printf("[%s] 员工 %s 合同到期提醒失败: %v", result.ScanID, employee.EmployeeID, err)
		} else if created {
			result.ContractAlerts++
		}
	}

	log.Printf("[%s] 提醒扫描完成: 扫描%d人, 生日提醒%d条, 合同提醒%d条",
		result.ScanID, result.EmployeesScanned, result.BirthdayAlerts, result.ContractAlerts)
	return result, nil
}

// checkBirthday 生日落在未来[0,7]天内时发出提醒
func (s *AlertService) checkBirthday(employee *models.Employee, user *models.User, today time.Time) (bool, error) {
	if employee.DOB == nil {
		return false, nil
	}

	days := daysUntilBirthday(*employee.DOB, today)
	if days < 0 || days > BirthdayWindowDays {
		return false, nil
	}

	var title, message string
	if days == 0 {
		title = "Happy Birthday"
		message = fmt.Sprintf("祝 %s 生日快乐！", employee.Name)
	} else {
		title = "Upcoming Birthday"
		message = fmt.Sprintf("%s 的生日还有 %d 天", employee.Name, days)
	}

	created, err := s.Notifications.CreateAlert(user.ID, models.NotificationTypeBirthday, title, message, today)
	if err != nil || !created {
		return created, err
	}

	s.sendMail(employee.Email, title, message)
	return true, nil
}

// checkContractExpiry 合同在未来[0,30]天内到期时发出带确切天数的警告
func (s *AlertService) checkContractExpiry(employee *models.Employee, user *models.User, today time.Time) (bool, error) {
	if employee.ContractExpiry == nil {
		return false, nil
	}

	expiry := dateOnly(*employee.ContractExpiry)
	days := daysBetween(today, expiry)
	if days < 0 || days > ContractExpiryWindowDays {
		return false, nil
	}

	title := "Contract Expiry Warning"
	var message string
	if days == 0 {
		message = fmt.Sprintf("%s 的合同今天到期", employee.Name)
	} else {
		message = fmt.Sprintf("%s 的合同将在 %d 天后到期", employee.Name, days)
	}

	created, err := s.Notifications.CreateAlert(user.ID, models.NotificationTypeContractExpiry, title, message, today)
	if err != nil || !created {
		return created, err
	}

	s.sendMail(employee.Email, title, message)
	return true, nil
}

// recipientOf 根据邮箱找到员工的关联账户
func (s *AlertService) recipientOf(employee *models.Employee) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", employee.Email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// sendMail 尽力而为地发送提醒邮件
func (s *AlertService) sendMail(to, subject, body string) {
	if s.Email == nil || !s.Email.Enabled() {
		return
	}
	if err := s.Email.SendAlertMail(to, subject, body); err != nil {
		log.Printf("发送提醒邮件到 %s 失败: %v", to, err)
	}
}

// today 返回本地午夜
func (s *AlertService) today() time.Time {
	return dateOnly(s.now())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween 按日历天数计算from到to的间隔。
// 折算成UTC日期再相减，夏令时导致的23/25小时天不会让计数少一天。
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// daysUntilBirthday 计算距离下一次生日的天数（今天返回0）
func daysUntilBirthday(dob, today time.Time) int {
	next := time.Date(today.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = time.Date(today.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, today.Location())
	}
	return daysBetween(today, next)
}
