// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"strconv"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/dbdriver"
)

// KV layout:
//
//	bmd##<provider>/<ns>/<bucket>/            => JSON(cmn.Bprops)
//	lom:<provider>/<ns>/<bucket>/##<object>   => JSON(lom)
//	obj:<provider>/<ns>/<bucket>/##<object>   => object content
//
// Object metadata and content are kept apart so that listing never reads content.
const (
	collBMD  = "bmd"
	pfxMeta  = "lom:"
	pfxData  = "obj:"
	mockMpth = "/mock"
)

// object metadata
type lom struct {
	CustomMD  map[string]string `json:"custom_md,omitempty"`
	CksumType string            `json:"cksum_type,omitempty"`
	CksumVal  string            `json:"cksum_value,omitempty"`
	Version   string            `json:"version"`
	Atime     int64             `json:"atime,string"`
	Size      int64             `json:"size,string"`
}

func collMeta(bck *cmn.Bck) string { return pfxMeta + bck.MakeUname("") }
func collData(bck *cmn.Bck) string { return pfxData + bck.MakeUname("") }

func (lom *lom) cksum() *cos.Cksum {
	if lom.CksumType == "" {
		return nil
	}
	return cos.NewCksum(lom.CksumType, lom.CksumVal)
}

func (lom *lom) attrs() *cmn.ObjAttrs {
	return &cmn.ObjAttrs{
		Cksum:    lom.cksum(),
		CustomMD: lom.CustomMD,
		Ver:      lom.Version,
		Atime:    lom.Atime,
		Size:     lom.Size,
	}
}

func (s *Server) toEntry(name string, lom *lom) *cmn.LsoEnt {
	en := &cmn.LsoEnt{
		Name:     name,
		Size:     lom.Size,
		Checksum: lom.CksumVal,
		Version:  lom.Version,
		Location: s.config.NodeID + apc.PropsLocationSepa + mockMpth,
		Copies:   1,
		Flags:    apc.LocOK | apc.EntryIsCached,
	}
	if lom.Atime != 0 {
		en.Atime = time.Unix(0, lom.Atime).UTC().Format(time.RFC3339)
	}
	if len(lom.CustomMD) > 0 {
		en.Custom = lom.attrs().CustomMDString()
	}
	return en
}

//
// buckets
//

func (s *Server) bprops(bck *cmn.Bck) (*cmn.Bprops, error) {
	props := &cmn.Bprops{}
	if err := s.db.Get(collBMD, bck.MakeUname(""), props); err != nil {
		if dbdriver.IsErrNotFound(err) {
			return nil, cmn.NewErrBckNotFound(bck)
		}
		return nil, err
	}
	return props, nil
}

func (s *Server) createBck(bck *cmn.Bck, props *cmn.Bprops) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.bprops(bck); err == nil {
		return cmn.NewErrBckAlreadyExists(bck)
	}
	np := &cmn.Bprops{CksumType: cos.ChecksumXXHash}
	if props != nil {
		if props.CksumType != "" {
			if err := cos.ValidateCksumType(props.CksumType); err != nil {
				return err
			}
			np.CksumType = props.CksumType
		}
		np.Versioning = props.Versioning
	}
	np.Provider = bck.Provider
	np.Created = time.Now().UnixNano()
	np.BID = uint64(np.Created)
	return s.db.Set(collBMD, bck.MakeUname(""), np)
}

func (s *Server) destroyBck(bck *cmn.Bck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.bprops(bck); err != nil {
		return err
	}
	keys, err := s.db.List(collMeta(bck), "")
	if err != nil {
		return err
	}
	if err := s.db.DeleteCollection(collData(bck)); err != nil {
		return err
	}
	if err := s.db.DeleteCollection(collMeta(bck)); err != nil {
		return err
	}
	s.stats.objs.Sub(float64(len(keys)))
	return s.db.Delete(collBMD, bck.MakeUname(""))
}

func (s *Server) listBcks(provider string) (cmn.Bcks, error) {
	all, err := s.db.GetAll(collBMD, "")
	if err != nil {
		return nil, err
	}
	bcks := make(cmn.Bcks, 0, len(all))
	for uname := range all {
		bck, _, err := cmn.ParseUname(uname)
		if err != nil {
			continue
		}
		if provider != "" && bck.Provider != provider {
			continue
		}
		bcks = append(bcks, bck)
	}
	return bcks, nil
}

//
// objects
//

func (s *Server) getLom(bck *cmn.Bck, objName string) (*lom, error) {
	lom := &lom{}
	if err := s.db.Get(collMeta(bck), objName, lom); err != nil {
		if dbdriver.IsErrNotFound(err) {
			return nil, cmn.NewErrObjNotFound(bck, objName)
		}
		return nil, err
	}
	return lom, nil
}

// putObj stores content and metadata; returns false when the object exists
// and `overwrite` is not set
func (s *Server) putObj(bck *cmn.Bck, objName string, data []byte, md *lom, overwrite bool) (bool, error) {
	props, err := s.bprops(bck)
	if err != nil {
		return false, err
	}
	cksum := cos.ChecksumBytes(props.CksumType, data)
	s.mu.Lock()
	defer s.mu.Unlock()

	var ver int64
	if prev, err := s.getLom(bck, objName); err == nil {
		if !overwrite {
			return false, nil
		}
		ver, _ = strconv.ParseInt(prev.Version, 10, 64)
	} else if !cmn.IsErrObjNotFound(err) {
		return false, err
	} else {
		s.stats.objs.Inc()
	}
	md.Size = int64(len(data))
	md.Atime = time.Now().UnixNano()
	md.Version = strconv.FormatInt(ver+1, 10)
	if cksum != nil {
		md.CksumType, md.CksumVal = cksum.Get()
	}
	if err := s.db.SetString(collData(bck), objName, string(data)); err != nil {
		return false, err
	}
	return true, s.db.Set(collMeta(bck), objName, md)
}

// reads content and updates access time
func (s *Server) getObj(bck *cmn.Bck, objName string) (*lom, string, error) {
	if _, err := s.bprops(bck); err != nil {
		return nil, "", err
	}
	lom, err := s.getLom(bck, objName)
	if err != nil {
		return nil, "", err
	}
	data, err := s.db.GetString(collData(bck), objName)
	if err != nil {
		return nil, "", err
	}
	lom.Atime = time.Now().UnixNano()
	s.mu.Lock()
	err = s.db.Set(collMeta(bck), objName, lom)
	s.mu.Unlock()
	return lom, data, err
}

func (s *Server) deleteObj(bck *cmn.Bck, objName string) error {
	if _, err := s.bprops(bck); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Delete(collMeta(bck), objName); err != nil {
		if dbdriver.IsErrNotFound(err) {
			return cmn.NewErrObjNotFound(bck, objName)
		}
		return err
	}
	s.stats.objs.Dec()
	if err := s.db.Delete(collData(bck), objName); err != nil && !dbdriver.IsErrNotFound(err) {
		return err
	}
	return nil
}
