package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱或者 SN 冲突
var ErrUserDuplicate = errors.New("用户已经注册")

// ErrPasswordSet 密码已经设置过了，不能再覆盖
var ErrPasswordSet = errors.New("密码已经设置")

const roleAdmin = "admin"

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	// SearchByName 按照昵称模糊匹配，不区分大小写，不包含管理员
	SearchByName(ctx context.Context, keyword string, limit int) ([]User, error)
	// SetPassword 只有还没有密码的账号才能设置
	SetPassword(ctx context.Context, id int64, hash string) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	if len(ids) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Where("id IN ?", ids).Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) SearchByName(ctx context.Context, keyword string, limit int) ([]User, error) {
	var us []User
	db := ud.db.WithContext(ctx).Where("role <> ?", roleAdmin)
	if keyword != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+keyword+"%")
	}
	err := db.Order("id ASC").Limit(limit).Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) SetPassword(ctx context.Context, id int64, hash string) error {
	res := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND password = ?", id, "").
		Updates(map[string]any{
			"password": hash,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPasswordSet
	}
	return nil
}

type User struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	SN       string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email    string `gorm:"type:varchar(256);uniqueIndex;not null"`
	Name     string `gorm:"type:varchar(256);not null;default:''"`
	Role     string `gorm:"type:varchar(16);not null;default:'user'"`
	// Password 为空表示预置的示例账号，第一次登录的时候设置
	Password string `gorm:"type:varchar(128);not null;default:''"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
