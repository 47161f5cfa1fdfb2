package forwarder

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jd3nn1s/ifuel"
	"github.com/pkg/errors"
)

type Header struct {
	Type uint8
}

const (
	TypeSnapshot = 1

	writeBufSize = 64 * 1024
)

type UDPConfig struct {
	Server string
	Port   int
}

// UDPForwarder sends every delivered snapshot as a header byte followed by
// its JSON encoding in a single datagram.
type UDPForwarder struct {
	Config *UDPConfig

	conn net.Conn
}

// NewUDPForwarder loads fileName from the directory holding the binary.
func NewUDPForwarder(fileName string) (*UDPForwarder, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to determine binary location")
	}
	file, err := os.Open(filepath.Join(dir, fileName))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", fileName)
	}
	defer file.Close()
	return NewUDPForwarderFromReader(file)
}

func NewUDPForwarderFromReader(configReader io.Reader) (*UDPForwarder, error) {
	configData, err := ioutil.ReadAll(configReader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config reader")
	}
	config := UDPConfig{}
	if _, err := toml.Decode(string(configData), &config); err != nil {
		return nil, errors.Wrapf(err, "unable to load udp forwarder configuration")
	}
	udp := &UDPForwarder{
		Config: &config,
	}
	if err = udp.connect(); err != nil {
		return nil, err
	}
	return udp, nil
}

func (udp *UDPForwarder) Close() error {
	return udp.conn.Close()
}

func (udp *UDPForwarder) Deliver(snap *ifuel.Snapshot) error {
	buf := bytes.NewBuffer([]byte{})
	hdr := Header{
		Type: TypeSnapshot,
	}
	if err := binary.Write(buf, binary.LittleEndian, &hdr); err != nil {
		return errors.Wrap(err, "unable to write udp packet header")
	}
	if err := json.NewEncoder(buf).Encode(snap); err != nil {
		return errors.Wrap(err, "unable to encode snapshot")
	}
	if _, err := udp.conn.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "unable to send snapshot udp packet")
	}
	return nil
}

func (udp *UDPForwarder) connect() error {
	conn, err := net.Dial("udp", fmt.Sprintf("%s:%d",
		udp.Config.Server,
		udp.Config.Port))
	if err != nil {
		return errors.Wrap(err, "unable to dial udp forwarder")
	}
	udpConn := conn.(*net.UDPConn)
	if err = udpConn.SetWriteBuffer(writeBufSize); err != nil {
		return errors.Wrapf(err, "unable to set OS write buffer to %v", writeBufSize)
	}

	udp.conn = conn
	return nil
}
