package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash 生成密码的bcrypt哈希
// 注册时调用，结果存入 user 表的 password_hash 字段
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify 校验明文密码与存储的哈希是否匹配（登录时调用）
// 哈希格式不合法同样返回false
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
